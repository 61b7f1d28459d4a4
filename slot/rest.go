package slot

import (
	"strconv"
)

type DetailRestModel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type RestModel struct {
	Slot     uint32            `json:"-"`
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Count    uint32            `json:"count"`
	Weight   uint32            `json:"weight"`
	Price    uint32            `json:"price,omitempty"`
	Currency string            `json:"currency,omitempty"`
	Rarity   string            `json:"rarity"`
	Metadata map[string]any    `json:"metadata,omitempty"`
	Details  []DetailRestModel `json:"details,omitempty"`
}

func (r RestModel) GetName() string {
	return "slots"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Slot))
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Slot = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	details := make([]DetailRestModel, 0, len(m.Details()))
	for _, d := range m.Details() {
		details = append(details, DetailRestModel{Label: d.Label(), Value: d.Value()})
	}
	return RestModel{
		Slot:     m.Index(),
		Name:     m.Name(),
		Label:    m.Label(),
		Count:    m.Count(),
		Weight:   m.Weight(),
		Price:    m.Price(),
		Currency: m.Currency(),
		Rarity:   string(m.Rarity()),
		Metadata: m.Metadata(),
		Details:  details,
	}, nil
}
