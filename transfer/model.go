package transfer

import (
	"atlas-overlay/inventory"
)

// Kind is the resolved shape of a server request. Exactly one request of one
// kind leaves the overlay per completed gesture.
type Kind string

const (
	KindMove     Kind = "MOVE"
	KindPurchase Kind = "PURCHASE"
	KindCraft    Kind = "CRAFT"
	KindUse      Kind = "USE"
)

// Endpoint names one side of a transfer the way the server wants it
// addressed, by inventory kind and slot rather than by mirror identifier.
type Endpoint struct {
	inventoryType inventory.Type
	slot          uint32
}

func NewEndpoint(inventoryType inventory.Type, slot uint32) Endpoint {
	return Endpoint{
		inventoryType: inventoryType,
		slot:          slot,
	}
}

func (e Endpoint) Type() inventory.Type {
	return e.inventoryType
}

func (e Endpoint) Slot() uint32 {
	return e.slot
}

// GroundSlot is the placeholder slot for quick drops. The server owns ground
// placement, so the overlay never picks a cell.
const GroundSlot = uint32(0)
