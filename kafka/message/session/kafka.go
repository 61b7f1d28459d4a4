package session

import "github.com/google/uuid"

const (
	EnvCommandTopic = "COMMAND_TOPIC_OVERLAY_SESSION"

	CommandBeginDrag  = "BEGIN_DRAG"
	CommandHover      = "HOVER"
	CommandClearHover = "CLEAR_HOVER"
	CommandDrop       = "DROP"
	CommandCancel     = "CANCEL"
	CommandQuickDrop  = "QUICK_DROP"
	CommandQuickUse   = "QUICK_USE"
)

type Command[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type BeginDragCommandBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}

type HoverCommandBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}

type ClearHoverCommandBody struct {
}

type DropCommandBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}

type CancelCommandBody struct {
}

type QuickDropCommandBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}

type QuickUseCommandBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}

const (
	EnvEventTopicStatus = "EVENT_TOPIC_OVERLAY_SESSION_STATUS"

	StatusEventTypeStarted   = "STARTED"
	StatusEventTypeCompleted = "COMPLETED"
	StatusEventTypeCancelled = "CANCELLED"
	StatusEventTypeTooltip   = "TOOLTIP"

	CancelReasonGateRejected = "GATE_REJECTED"
	CancelReasonStale        = "STALE"
	CancelReasonReleased     = "RELEASED"
	CancelReasonClosed       = "CLOSED"
)

type StatusEvent[E any] struct {
	CharacterId uint32    `json:"characterId"`
	SessionId   uuid.UUID `json:"sessionId"`
	Type        string    `json:"type"`
	Body        E         `json:"body"`
}

type StartedStatusEventBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
	ItemName    string `json:"itemName"`
}

type CompletedStatusEventBody struct {
	Kind string `json:"kind"`
}

type CancelledStatusEventBody struct {
	Reason string `json:"reason"`
}

type TooltipStatusEventBody struct {
	InventoryId string `json:"inventoryId"`
	Slot        uint32 `json:"slot"`
}
