package inventory

const (
	EnvEventTopicStatus = "EVENT_TOPIC_OVERLAY_STATUS"

	StatusEventTypeReplaced    = "REPLACED"
	StatusEventTypeSlotUpdated = "SLOT_UPDATED"
	StatusEventTypeVisibility  = "VISIBILITY"
	StatusEventTypeClosed      = "CLOSED"
)

type StatusEvent[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type ReplacedStatusEventBody struct {
	Inventories []string `json:"inventories"`
}

type SlotUpdatedStatusEventBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
	ItemName    string `json:"itemName,omitempty"`
}

type VisibilityStatusEventBody struct {
	Visible bool `json:"visible"`
}

type ClosedStatusEventBody struct {
}
