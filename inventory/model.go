package inventory

import (
	"atlas-overlay/slot"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type Model struct {
	id          string
	characterId uint32
	invType     Type
	label       string
	groups      map[string]byte
	capacity    uint32
	maxWeight   uint32
	side        Side
	slots       []slot.Model
}

func (m Model) Id() string {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) Type() Type {
	return m.invType
}

func (m Model) Label() string {
	return m.label
}

func (m Model) Groups() map[string]byte {
	return m.groups
}

func (m Model) Capacity() uint32 {
	return m.capacity
}

func (m Model) MaxWeight() uint32 {
	return m.maxWeight
}

func (m Model) Side() Side {
	return m.side
}

func (m Model) Slots() []slot.Model {
	return m.slots
}

// Weight is the aggregate carried weight across occupied slots.
func (m Model) Weight() uint32 {
	var total uint32
	for _, s := range m.slots {
		total += s.TotalWeight()
	}
	return total
}

func (m Model) SlotAt(index uint32) (slot.Model, bool) {
	for _, s := range m.slots {
		if s.Index() == index {
			return s, true
		}
	}
	return slot.Model{}, false
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		id:          m.id,
		characterId: m.characterId,
		invType:     m.invType,
		label:       m.label,
		groups:      m.groups,
		capacity:    m.capacity,
		maxWeight:   m.maxWeight,
		side:        m.side,
		slots:       m.slots,
	}
}

type ModelBuilder struct {
	id          string
	characterId uint32
	invType     Type
	label       string
	groups      map[string]byte
	capacity    uint32
	maxWeight   uint32
	side        Side
	slots       []slot.Model
}

func NewBuilder(id string, characterId uint32, invType Type, capacity uint32) *ModelBuilder {
	return &ModelBuilder{
		id:          id,
		characterId: characterId,
		invType:     invType,
		capacity:    capacity,
		groups:      make(map[string]byte),
		side:        SideLeft,
		slots:       make([]slot.Model, 0),
	}
}

func (b *ModelBuilder) SetLabel(label string) *ModelBuilder {
	b.label = label
	return b
}

func (b *ModelBuilder) SetGroups(groups map[string]byte) *ModelBuilder {
	if groups == nil {
		groups = make(map[string]byte)
	}
	b.groups = groups
	return b
}

func (b *ModelBuilder) SetMaxWeight(maxWeight uint32) *ModelBuilder {
	b.maxWeight = maxWeight
	return b
}

func (b *ModelBuilder) SetSide(side Side) *ModelBuilder {
	b.side = side
	return b
}

func (b *ModelBuilder) SetSlots(ss []slot.Model) *ModelBuilder {
	b.slots = ss
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		id:          b.id,
		characterId: b.characterId,
		invType:     b.invType,
		label:       b.label,
		groups:      b.groups,
		capacity:    b.capacity,
		maxWeight:   b.maxWeight,
		side:        b.side,
		slots:       b.slots,
	}
}
