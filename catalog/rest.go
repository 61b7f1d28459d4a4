package catalog

type RestModel struct {
	Id        string `json:"-"`
	Label     string `json:"label"`
	Weight    uint32 `json:"weight"`
	Rarity    string `json:"rarity"`
	Stackable bool   `json:"stackable"`
}

func (r RestModel) GetName() string {
	return "items"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Extract(rm RestModel) (Model, error) {
	rarity := RarityCommon
	if r, ok := RarityFromString(rm.Rarity); ok {
		rarity = r
	}
	return Model{
		name:      rm.Id,
		label:     rm.Label,
		weight:    rm.Weight,
		rarity:    rarity,
		stackable: rm.Stackable,
	}, nil
}
