package catalog

// Rarity of an item definition. Slot metadata may override it per stack.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func RarityFromString(s string) (Rarity, bool) {
	switch Rarity(s) {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return Rarity(s), true
	}
	return "", false
}

type Model struct {
	name      string
	label     string
	weight    uint32
	rarity    Rarity
	stackable bool
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Label() string {
	return m.label
}

func (m Model) Weight() uint32 {
	return m.weight
}

func (m Model) Rarity() Rarity {
	return m.rarity
}

func (m Model) Stackable() bool {
	return m.stackable
}
