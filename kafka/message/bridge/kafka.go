package bridge

import "github.com/google/uuid"

// The inbound event type strings are the bridge wire contract and must match
// what the game server emits byte for byte.
const (
	EnvEventTopic = "EVENT_TOPIC_INVENTORY_BRIDGE"

	EventTypeSetupInventory      = "setupInventory"
	EventTypeRefreshSlots        = "refreshSlots"
	EventTypeDisplayMetadata     = "displayMetadata"
	EventTypeSetInventoryVisible = "setInventoryVisible"
	EventTypeCloseInventory      = "closeInventory"
)

type Event[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type SetupInventoryEventBody struct {
	LeftInventory  *InventoryBody `json:"leftInventory,omitempty"`
	RightInventory *InventoryBody `json:"rightInventory,omitempty"`
}

type InventoryBody struct {
	Id        string          `json:"id"`
	Type      string          `json:"type"`
	Label     string          `json:"label,omitempty"`
	Groups    map[string]byte `json:"groups,omitempty"`
	Slots     uint32          `json:"slots"`
	MaxWeight uint32          `json:"maxWeight,omitempty"`
	Items     []SlotBody      `json:"items"`
}

// SlotBody is a full replacement for one slot index. A body without a name
// clears the slot.
type SlotBody struct {
	Slot     uint32         `json:"slot"`
	Name     string         `json:"name,omitempty"`
	Count    uint32         `json:"count,omitempty"`
	Weight   uint32         `json:"weight,omitempty"`
	Price    uint32         `json:"price,omitempty"`
	Currency string         `json:"currency,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type RefreshSlotsEventBody struct {
	Items []SlotUpdateBody `json:"items"`
}

type SlotUpdateBody struct {
	InventoryId string   `json:"inventory"`
	Item        SlotBody `json:"item"`
}

type DisplayMetadataBody struct {
	Metadata string `json:"metadata"`
	Value    string `json:"value"`
}

type SetInventoryVisibleEventBody struct {
	Visible bool `json:"visible"`
}

type CloseInventoryEventBody struct {
}

const (
	EnvCommandTopic = "COMMAND_TOPIC_INVENTORY_BRIDGE"

	RequestTypeMove     = "MOVE"
	RequestTypePurchase = "PURCHASE"
	RequestTypeCraft    = "CRAFT"
	RequestTypeUse      = "USE"
)

type Request[E any] struct {
	CharacterId   uint32    `json:"characterId"`
	TransactionId uuid.UUID `json:"transactionId"`
	Type          string    `json:"type"`
	Body          E         `json:"body"`
}

type ItemBody struct {
	Slot uint32 `json:"slot"`
}

type EndpointBody struct {
	Inventory string   `json:"inventory"`
	Item      ItemBody `json:"item"`
}

type MoveRequestBody struct {
	Source EndpointBody `json:"source"`
	Target EndpointBody `json:"target"`
}

type PurchaseRequestBody struct {
	Source EndpointBody `json:"source"`
	Target EndpointBody `json:"target"`
}

type CraftRequestBody struct {
	Source EndpointBody `json:"source"`
	Target EndpointBody `json:"target"`
}

type UseRequestBody struct {
	Item ItemBody `json:"item"`
}
