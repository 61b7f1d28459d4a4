package inventory

import (
	"atlas-overlay/kafka/message"
	inventory2 "atlas-overlay/kafka/message/inventory"
	"atlas-overlay/kafka/producer"
	model2 "atlas-overlay/model"
	"atlas-overlay/slot"
	"context"
	"errors"
	"fmt"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SnapshotInput is a bridge-pushed picture of one inventory pane. The overlay
// replaces whatever it held before with exactly this.
type SnapshotInput struct {
	Id        string
	Type      string
	Label     string
	Groups    map[string]byte
	Capacity  uint32
	MaxWeight uint32
	Items     []SlotInput
}

type SlotInput struct {
	Index    uint32
	Name     string
	Count    uint32
	Weight   uint32
	Price    uint32
	Currency string
	Metadata map[string]any
}

// SlotRefreshInput targets one cell of one mirrored inventory. An empty Name
// clears the cell.
type SlotRefreshInput struct {
	InventoryId string
	Item        SlotInput
}

type DisplayEntry struct {
	Metadata string
	Value    string
}

type Processor struct {
	l                logrus.FieldLogger
	ctx              context.Context
	db               *gorm.DB
	t                tenant.Model
	slotProcessor    *slot.Processor
	GetByCharacterId func(characterId uint32) ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:             l,
		ctx:           ctx,
		db:            db,
		t:             tenant.MustFromContext(ctx),
		slotProcessor: slot.NewProcessor(l, ctx, db),
	}
	p.GetByCharacterId = model2.CollapseProvider(p.ByCharacterIdProvider)
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	np := &Processor{
		l:             p.l,
		ctx:           p.ctx,
		db:            db,
		t:             p.t,
		slotProcessor: p.slotProcessor.WithTransaction(db),
	}
	np.GetByCharacterId = model2.CollapseProvider(np.ByCharacterIdProvider)
	return np
}

func (p *Processor) WithSlotProcessor(sp *slot.Processor) *Processor {
	np := &Processor{
		l:             p.l,
		ctx:           p.ctx,
		db:            p.db,
		t:             p.t,
		slotProcessor: sp,
	}
	np.GetByCharacterId = model2.CollapseProvider(np.ByCharacterIdProvider)
	return np
}

func (p *Processor) ByCharacterIdProvider(characterId uint32) model.Provider[[]Model] {
	is, err := model.SliceMap(Make)(getByCharacterId(p.t.Id(), characterId)(p.db))(model.ParallelMap())()
	if err != nil {
		return model.ErrorProvider[[]Model](err)
	}
	return model.SliceMap(p.DecorateSlots)(model.FixedProvider(is))(model.ParallelMap())
}

func (p *Processor) ByIdProvider(characterId uint32) func(inventoryId string) model.Provider[Model] {
	return func(inventoryId string) model.Provider[Model] {
		return model.Map(p.DecorateSlots)(model.Map(Make)(getById(p.t.Id(), characterId, inventoryId)(p.db)))
	}
}

func (p *Processor) GetById(characterId uint32, inventoryId string) (Model, error) {
	return p.ByIdProvider(characterId)(inventoryId)()
}

func (p *Processor) ByTypeProvider(characterId uint32) func(inventoryType Type) model.Provider[[]Model] {
	return func(inventoryType Type) model.Provider[[]Model] {
		is, err := model.SliceMap(Make)(getByType(p.t.Id(), characterId, inventoryType)(p.db))(model.ParallelMap())()
		if err != nil {
			return model.ErrorProvider[[]Model](err)
		}
		return model.SliceMap(p.DecorateSlots)(model.FixedProvider(is))(model.ParallelMap())
	}
}

// GetByType returns the first mirrored inventory of the given kind. The
// bridge pushes at most one player pane per character, so first is enough for
// gate context building.
func (p *Processor) GetByType(characterId uint32, inventoryType Type) (Model, error) {
	is, err := p.ByTypeProvider(characterId)(inventoryType)()
	if err != nil {
		return Model{}, err
	}
	if len(is) == 0 {
		return Model{}, gorm.ErrRecordNotFound
	}
	return is[0], nil
}

func (p *Processor) DecorateSlots(m Model) (Model, error) {
	ss, err := p.slotProcessor.ByInventoryIdProvider(m.CharacterId())(m.Id())()
	if err != nil {
		return Model{}, err
	}
	return Clone(m).SetSlots(ss).Build(), nil
}

// Setup replaces the character's mirror wholesale with the pushed panes. Any
// drag the session layer held against the old mirror must be invalidated by
// the caller before this runs.
func (p *Processor) Setup(mb *message.Buffer) func(characterId uint32, left *SnapshotInput, right *SnapshotInput) ([]Model, error) {
	return func(characterId uint32, left *SnapshotInput, right *SnapshotInput) ([]Model, error) {
		p.l.Debugf("Attempting to set up overlay mirror for character [%d].", characterId)
		if left == nil && right == nil {
			return nil, errors.New("setup requires at least one inventory")
		}
		var res []Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			err := deleteByCharacterId(tx, p.t.Id(), characterId)
			if err != nil {
				return err
			}
			err = p.slotProcessor.WithTransaction(tx).DeleteByCharacterId(characterId)
			if err != nil {
				return err
			}

			ids := make([]string, 0, 2)
			for _, pane := range []struct {
				side Side
				in   *SnapshotInput
			}{{SideLeft, left}, {SideRight, right}} {
				if pane.in == nil {
					continue
				}
				var m Model
				m, err = p.createOne(tx)(characterId, pane.side, *pane.in)
				if err != nil {
					return err
				}
				res = append(res, m)
				ids = append(ids, m.Id())
			}

			GetVisibilityRegistry().Set(p.t, characterId, true)
			return mb.Put(inventory2.EnvEventTopicStatus, ReplacedEventStatusProvider(characterId, ids))
		})
		if txErr != nil {
			return nil, txErr
		}
		p.l.Debugf("Mirroring [%d] inventories for character [%d].", len(res), characterId)
		return res, nil
	}
}

func (p *Processor) createOne(tx *gorm.DB) func(characterId uint32, side Side, in SnapshotInput) (Model, error) {
	return func(characterId uint32, side Side, in SnapshotInput) (Model, error) {
		it, ok := TypeFromString(in.Type)
		if !ok {
			return Model{}, fmt.Errorf("unknown inventory type [%s]", in.Type)
		}
		m, err := create(tx, p.t.Id(), NewBuilder(in.Id, characterId, it, in.Capacity).
			SetLabel(in.Label).
			SetGroups(in.Groups).
			SetMaxWeight(in.MaxWeight).
			SetSide(side).
			Build())
		if err != nil {
			return Model{}, err
		}
		sp := p.slotProcessor.WithTransaction(tx)
		for _, item := range in.Items {
			if item.Name == "" {
				continue
			}
			if item.Index < 1 || item.Index > in.Capacity {
				p.l.Warnf("Discarding item [%s] at out of range slot [%d] of inventory [%s].", item.Name, item.Index, in.Id)
				continue
			}
			_, err = sp.Replace(characterId, in.Id, slotModelFromInput(item))
			if err != nil {
				return Model{}, err
			}
		}
		return m, nil
	}
}

func slotModelFromInput(in SlotInput) slot.Model {
	return slot.NewBuilder(in.Index, in.Name, in.Count).
		SetWeight(in.Weight).
		SetPrice(in.Price).
		SetCurrency(in.Currency).
		SetMetadata(in.Metadata).
		Build()
}

// ApplyRefresh folds a batch of server-pushed slot deltas into the mirror,
// one cell at a time. Rows naming an unknown inventory or an out of range
// slot are discarded.
func (p *Processor) ApplyRefresh(mb *message.Buffer) func(characterId uint32, updates []SlotRefreshInput) error {
	return func(characterId uint32, updates []SlotRefreshInput) error {
		p.l.Debugf("Attempting to refresh [%d] slots for character [%d].", len(updates), characterId)
		return p.db.Transaction(func(tx *gorm.DB) error {
			tp := p.WithTransaction(tx)
			for _, u := range updates {
				m, err := tp.GetById(characterId, u.InventoryId)
				if err != nil {
					p.l.WithError(err).Warnf("Discarding refresh for unknown inventory [%s] of character [%d].", u.InventoryId, characterId)
					continue
				}
				if u.Item.Index < 1 || u.Item.Index > m.Capacity() {
					p.l.Warnf("Discarding refresh for out of range slot [%d] of inventory [%s].", u.Item.Index, u.InventoryId)
					continue
				}
				if u.Item.Name == "" {
					err = tp.slotProcessor.Clear(characterId, u.InventoryId, u.Item.Index)
				} else {
					_, err = tp.slotProcessor.Replace(characterId, u.InventoryId, slotModelFromInput(u.Item))
				}
				if err != nil {
					return err
				}
				err = mb.Put(inventory2.EnvEventTopicStatus, SlotUpdatedEventStatusProvider(characterId, u.InventoryId, u.Item.Index, u.Item.Name))
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
}

func (p *Processor) SetVisible(mb *message.Buffer) func(characterId uint32, visible bool) error {
	return func(characterId uint32, visible bool) error {
		GetVisibilityRegistry().Set(p.t, characterId, visible)
		return mb.Put(inventory2.EnvEventTopicStatus, VisibilityEventStatusProvider(characterId, visible))
	}
}

// SetDisplayMetadata records which metadata keys deserve a rendered tooltip
// line. Pure render state, so no status event is emitted.
func (p *Processor) SetDisplayMetadata(characterId uint32, entries []DisplayEntry) {
	for _, e := range entries {
		slot.GetDisplayRegistry().Add(p.t, characterId, e.Metadata, e.Value)
	}
}

// Close drops the character's entire mirror along with the volatile render
// state kept beside it.
func (p *Processor) Close(mb *message.Buffer) func(characterId uint32) error {
	return func(characterId uint32) error {
		p.l.Debugf("Attempting to close overlay for character [%d].", characterId)
		return p.db.Transaction(func(tx *gorm.DB) error {
			err := deleteByCharacterId(tx, p.t.Id(), characterId)
			if err != nil {
				return err
			}
			err = p.slotProcessor.WithTransaction(tx).DeleteByCharacterId(characterId)
			if err != nil {
				return err
			}
			GetVisibilityRegistry().RemoveForCharacter(p.t, characterId)
			slot.GetDisplayRegistry().RemoveForCharacter(p.t, characterId)
			return mb.Put(inventory2.EnvEventTopicStatus, ClosedEventStatusProvider(characterId))
		})
	}
}

func (p *Processor) SetupAndEmit(characterId uint32, left *SnapshotInput, right *SnapshotInput) ([]Model, error) {
	var res []Model
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		res, err = p.Setup(buf)(characterId, left, right)
		return err
	})
	return res, err
}

func (p *Processor) ApplyRefreshAndEmit(characterId uint32, updates []SlotRefreshInput) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.ApplyRefresh(buf)(characterId, updates)
	})
}

func (p *Processor) SetVisibleAndEmit(characterId uint32, visible bool) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.SetVisible(buf)(characterId, visible)
	})
}

func (p *Processor) CloseAndEmit(characterId uint32) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Close(buf)(characterId)
	})
}
