package session

import (
	"time"
)

type RestModel struct {
	Id               string    `json:"-"`
	State            string    `json:"state"`
	InventoryId      string    `json:"inventoryId"`
	Slot             uint32    `json:"slot"`
	ItemName         string    `json:"itemName"`
	HoverInventoryId string    `json:"hoverInventoryId,omitempty"`
	HoverSlot        uint32    `json:"hoverSlot,omitempty"`
	StartedAt        time.Time `json:"startedAt"`
}

func (r RestModel) GetName() string {
	return "drags"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Transform(m Model) (RestModel, error) {
	rm := RestModel{
		Id:          m.Id().String(),
		State:       m.State().String(),
		InventoryId: m.Source().InventoryId(),
		Slot:        m.Source().Slot(),
		ItemName:    m.Source().ItemName(),
		StartedAt:   m.StartedAt(),
	}
	if h, ok := m.Hover(); ok {
		rm.HoverInventoryId = h.InventoryId()
		rm.HoverSlot = h.Slot()
	}
	return rm, nil
}
