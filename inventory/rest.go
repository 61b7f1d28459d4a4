package inventory

import (
	"strconv"
)

type RestModel struct {
	Id        string          `json:"-"`
	Type      string          `json:"inventoryType"`
	Label     string          `json:"label,omitempty"`
	Groups    map[string]byte `json:"groups,omitempty"`
	Capacity  uint32          `json:"capacity"`
	Weight    uint32          `json:"weight"`
	MaxWeight uint32          `json:"maxWeight,omitempty"`
	Side      string          `json:"side"`
}

func (r RestModel) GetName() string {
	return "inventories"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:        m.Id(),
		Type:      string(m.Type()),
		Label:     m.Label(),
		Groups:    m.Groups(),
		Capacity:  m.Capacity(),
		Weight:    m.Weight(),
		MaxWeight: m.MaxWeight(),
		Side:      string(m.Side()),
	}, nil
}

type OverlayRestModel struct {
	Id      uint32 `json:"-"`
	Visible bool   `json:"visible"`
}

func (r OverlayRestModel) GetName() string {
	return "overlays"
}

func (r OverlayRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *OverlayRestModel) SetID(strId string) error {
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}
