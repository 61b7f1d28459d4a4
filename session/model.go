package session

import (
	"atlas-overlay/inventory"
	"time"

	"github.com/google/uuid"
)

// State tracks a gesture through its lifecycle. Terminal states are observed
// in emitted events only. The registry never holds a terminal session.
type State byte

const (
	StateIdle State = iota
	StateDragging
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDragging:
		return "DRAGGING"
	case StateCompleted:
		return "COMPLETED"
	case StateCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

// DragSource is the snapshot taken when an item is picked up. Later pushes
// may rewrite the mirror underneath it, which is exactly what staleness
// checks compare against.
type DragSource struct {
	inventoryId   string
	inventoryType inventory.Type
	slot          uint32
	itemName      string
}

func NewDragSource(inventoryId string, inventoryType inventory.Type, slot uint32, itemName string) DragSource {
	return DragSource{
		inventoryId:   inventoryId,
		inventoryType: inventoryType,
		slot:          slot,
		itemName:      itemName,
	}
}

func (s DragSource) InventoryId() string {
	return s.inventoryId
}

func (s DragSource) InventoryType() inventory.Type {
	return s.inventoryType
}

func (s DragSource) Slot() uint32 {
	return s.slot
}

func (s DragSource) ItemName() string {
	return s.itemName
}

type HoverTarget struct {
	inventoryId string
	slot        uint32
}

func NewHoverTarget(inventoryId string, slot uint32) HoverTarget {
	return HoverTarget{
		inventoryId: inventoryId,
		slot:        slot,
	}
}

func (h HoverTarget) InventoryId() string {
	return h.inventoryId
}

func (h HoverTarget) Slot() uint32 {
	return h.slot
}

type Model struct {
	id          uuid.UUID
	characterId uint32
	state       State
	source      DragSource
	hover       HoverTarget
	hasHover    bool
	startedAt   time.Time
}

func (m Model) Id() uuid.UUID {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) State() State {
	return m.state
}

func (m Model) Source() DragSource {
	return m.source
}

func (m Model) Hover() (HoverTarget, bool) {
	return m.hover, m.hasHover
}

func (m Model) StartedAt() time.Time {
	return m.startedAt
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:          m.id,
		characterId: m.characterId,
		state:       m.state,
		source:      m.source,
		hover:       m.hover,
		hasHover:    m.hasHover,
		startedAt:   m.startedAt,
	}
}

type ModelBuilder struct {
	id          uuid.UUID
	characterId uint32
	state       State
	source      DragSource
	hover       HoverTarget
	hasHover    bool
	startedAt   time.Time
}

func NewBuilder(id uuid.UUID, characterId uint32) *ModelBuilder {
	return &ModelBuilder{
		id:          id,
		characterId: characterId,
		state:       StateIdle,
		startedAt:   time.Now(),
	}
}

func (b *ModelBuilder) SetState(state State) *ModelBuilder {
	b.state = state
	return b
}

func (b *ModelBuilder) SetSource(source DragSource) *ModelBuilder {
	b.source = source
	return b
}

func (b *ModelBuilder) SetHover(hover HoverTarget) *ModelBuilder {
	b.hover = hover
	b.hasHover = true
	return b
}

func (b *ModelBuilder) ClearHover() *ModelBuilder {
	b.hover = HoverTarget{}
	b.hasHover = false
	return b
}

func (b *ModelBuilder) SetStartedAt(t time.Time) *ModelBuilder {
	b.startedAt = t
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:          b.id,
		characterId: b.characterId,
		state:       b.state,
		source:      b.source,
		hover:       b.hover,
		hasHover:    b.hasHover,
		startedAt:   b.startedAt,
	}
}
