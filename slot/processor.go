package slot

import (
	"atlas-overlay/catalog"
	"context"
	"fmt"
	"sort"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l                logrus.FieldLogger
	ctx              context.Context
	db               *gorm.DB
	t                tenant.Model
	catalogProcessor catalog.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:                l,
		ctx:              ctx,
		db:               db,
		t:                tenant.MustFromContext(ctx),
		catalogProcessor: catalog.NewProcessor(l, ctx),
	}
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return &Processor{
		l:                p.l,
		ctx:              p.ctx,
		db:               db,
		t:                p.t,
		catalogProcessor: p.catalogProcessor,
	}
}

func (p *Processor) WithCatalogProcessor(cp catalog.Processor) *Processor {
	return &Processor{
		l:                p.l,
		ctx:              p.ctx,
		db:               p.db,
		t:                p.t,
		catalogProcessor: cp,
	}
}

func (p *Processor) ByInventoryIdProvider(characterId uint32) func(inventoryId string) model.Provider[[]Model] {
	return func(inventoryId string) model.Provider[[]Model] {
		sp := model.SliceMap(Make)(getByInventoryId(p.t.Id(), characterId, inventoryId)(p.db))(model.ParallelMap())
		return model.SliceMap(p.DecorateDisplay(characterId))(sp)(model.ParallelMap())
	}
}

func (p *Processor) GetByInventoryId(characterId uint32, inventoryId string) ([]Model, error) {
	return p.ByInventoryIdProvider(characterId)(inventoryId)()
}

func (p *Processor) BySlotProvider(characterId uint32, inventoryId string) func(slot uint32) model.Provider[Model] {
	return func(slot uint32) model.Provider[Model] {
		return model.Map(p.DecorateDisplay(characterId))(model.Map(Make)(getBySlot(p.t.Id(), characterId, inventoryId, slot)(p.db)))
	}
}

func (p *Processor) GetBySlot(characterId uint32, inventoryId string, slot uint32) (Model, error) {
	return p.BySlotProvider(characterId, inventoryId)(slot)()
}

// DecorateDisplay resolves the label, rarity, and tooltip details a renderer
// needs. A stack's own metadata wins over the item catalog, and a catalog miss
// degrades to the raw item name rather than failing the lookup.
func (p *Processor) DecorateDisplay(characterId uint32) model.Transformer[Model, Model] {
	return func(m Model) (Model, error) {
		if !m.Occupied() {
			return m, nil
		}

		label := m.Name()
		rarity := catalog.RarityCommon
		weight := m.Weight()

		ci, err := p.catalogProcessor.GetByName(m.Name())
		if err != nil {
			p.l.WithError(err).Debugf("Item [%s] not present in catalog. Rendering raw name.", m.Name())
		} else {
			if ci.Label() != "" {
				label = ci.Label()
			}
			rarity = ci.Rarity()
			if weight == 0 {
				weight = ci.Weight()
			}
		}

		if ml, ok := m.Metadata().Label(); ok {
			label = ml
		}
		if mr, ok := m.Metadata().Rarity(); ok {
			rarity = mr
		}

		return Clone(m).
			SetLabel(label).
			SetRarity(rarity).
			SetWeight(weight).
			SetDetails(p.resolveDetails(characterId, m.Metadata())).
			Build(), nil
	}
}

func (p *Processor) resolveDetails(characterId uint32, md Metadata) []Detail {
	labels := GetDisplayRegistry().GetAll(p.t, characterId)
	if len(labels) == 0 {
		return nil
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		if _, exists := md[k]; exists {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	details := make([]Detail, 0, len(keys))
	for _, k := range keys {
		details = append(details, NewDetail(labels[k], fmt.Sprintf("%v", md[k])))
	}
	return details
}

func (p *Processor) Replace(characterId uint32, inventoryId string, m Model) (Model, error) {
	var res Model
	txErr := p.db.Transaction(func(tx *gorm.DB) error {
		err := deleteBySlot(tx, p.t.Id(), characterId, inventoryId, m.Index())
		if err != nil {
			return err
		}
		res, err = create(tx, p.t.Id(), characterId, inventoryId, m)
		return err
	})
	if txErr != nil {
		return Model{}, txErr
	}
	return res, nil
}

func (p *Processor) Clear(characterId uint32, inventoryId string, slot uint32) error {
	return deleteBySlot(p.db, p.t.Id(), characterId, inventoryId, slot)
}

func (p *Processor) DeleteByInventoryId(characterId uint32, inventoryId string) error {
	return deleteByInventoryId(p.db, p.t.Id(), characterId, inventoryId)
}

func (p *Processor) DeleteByCharacterId(characterId uint32) error {
	return deleteByCharacterId(p.db, p.t.Id(), characterId)
}
