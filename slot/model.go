package slot

import (
	"atlas-overlay/catalog"
)

const (
	MetadataLabel       = "label"
	MetadataRarity      = "rarity"
	MetadataDurability  = "durability"
	MetadataIngredients = "ingredients"
)

// Metadata is the opaque per-stack payload pushed by the bridge. Keys the
// overlay understands get typed accessors, everything else passes through
// untouched for rendering.
type Metadata map[string]any

func (m Metadata) Label() (string, bool) {
	if v, ok := m[MetadataLabel].(string); ok && v != "" {
		return v, true
	}
	return "", false
}

func (m Metadata) Rarity() (catalog.Rarity, bool) {
	if v, ok := m[MetadataRarity].(string); ok {
		return catalog.RarityFromString(v)
	}
	return "", false
}

func (m Metadata) Durability() (float64, bool) {
	if v, ok := m[MetadataDurability].(float64); ok {
		return v, true
	}
	return 0, false
}

// Ingredients reads the recipe requirements a crafting slot advertises.
// JSON decoding hands numbers over as float64.
func (m Metadata) Ingredients() map[string]uint32 {
	raw, ok := m[MetadataIngredients].(map[string]any)
	if !ok {
		return nil
	}
	res := make(map[string]uint32, len(raw))
	for name, qty := range raw {
		if f, ok := qty.(float64); ok && f > 0 {
			res[name] = uint32(f)
		}
	}
	return res
}

type Detail struct {
	label string
	value string
}

func (d Detail) Label() string {
	return d.label
}

func (d Detail) Value() string {
	return d.value
}

func NewDetail(label string, value string) Detail {
	return Detail{label: label, value: value}
}

type Model struct {
	index    uint32
	name     string
	count    uint32
	weight   uint32
	price    uint32
	currency string
	metadata Metadata
	label    string
	rarity   catalog.Rarity
	details  []Detail
}

func (m Model) Index() uint32 {
	return m.index
}

func (m Model) Occupied() bool {
	return m.name != ""
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Count() uint32 {
	return m.count
}

func (m Model) Weight() uint32 {
	return m.weight
}

func (m Model) TotalWeight() uint32 {
	return m.weight * m.count
}

func (m Model) Price() uint32 {
	return m.price
}

func (m Model) Currency() string {
	return m.currency
}

func (m Model) Metadata() Metadata {
	return m.metadata
}

func (m Model) Label() string {
	return m.label
}

func (m Model) Rarity() catalog.Rarity {
	return m.rarity
}

func (m Model) Details() []Detail {
	return m.details
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		index:    m.index,
		name:     m.name,
		count:    m.count,
		weight:   m.weight,
		price:    m.price,
		currency: m.currency,
		metadata: m.metadata,
		label:    m.label,
		rarity:   m.rarity,
		details:  m.details,
	}
}

type ModelBuilder struct {
	index    uint32
	name     string
	count    uint32
	weight   uint32
	price    uint32
	currency string
	metadata Metadata
	label    string
	rarity   catalog.Rarity
	details  []Detail
}

func NewBuilder(index uint32, name string, count uint32) *ModelBuilder {
	return &ModelBuilder{
		index:    index,
		name:     name,
		count:    count,
		metadata: Metadata{},
		rarity:   catalog.RarityCommon,
	}
}

func (b *ModelBuilder) SetWeight(weight uint32) *ModelBuilder {
	b.weight = weight
	return b
}

func (b *ModelBuilder) SetPrice(price uint32) *ModelBuilder {
	b.price = price
	return b
}

func (b *ModelBuilder) SetCurrency(currency string) *ModelBuilder {
	b.currency = currency
	return b
}

func (b *ModelBuilder) SetMetadata(metadata Metadata) *ModelBuilder {
	if metadata == nil {
		metadata = Metadata{}
	}
	b.metadata = metadata
	return b
}

func (b *ModelBuilder) SetLabel(label string) *ModelBuilder {
	b.label = label
	return b
}

func (b *ModelBuilder) SetRarity(rarity catalog.Rarity) *ModelBuilder {
	b.rarity = rarity
	return b
}

func (b *ModelBuilder) SetDetails(details []Detail) *ModelBuilder {
	b.details = details
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		index:    b.index,
		name:     b.name,
		count:    b.count,
		weight:   b.weight,
		price:    b.price,
		currency: b.currency,
		metadata: b.metadata,
		label:    b.label,
		rarity:   b.rarity,
		details:  b.details,
	}
}
