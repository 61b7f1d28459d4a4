package inventory

// Type identifies the kind of inventory surface shown in the overlay. The set
// is closed: the gate and transfer policy sites switch over it exhaustively,
// so introducing a new surface forces each of those sites to be revisited.
type Type string

const (
	TypePlayer    Type = "player"
	TypeShop      Type = "shop"
	TypeCrafting  Type = "crafting"
	TypeContainer Type = "container"
	TypeGlovebox  Type = "glovebox"
	TypeTrunk     Type = "trunk"
	TypeGround    Type = "ground"
	TypeHotbar    Type = "hotbar"
)

var Types = []Type{TypePlayer, TypeShop, TypeCrafting, TypeContainer, TypeGlovebox, TypeTrunk, TypeGround, TypeHotbar}

func TypeFromString(s string) (Type, bool) {
	switch Type(s) {
	case TypePlayer, TypeShop, TypeCrafting, TypeContainer, TypeGlovebox, TypeTrunk, TypeGround, TypeHotbar:
		return Type(s), true
	}
	return "", false
}
