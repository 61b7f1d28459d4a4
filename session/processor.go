package session

import (
	"atlas-overlay/character"
	"atlas-overlay/feedback"
	"atlas-overlay/gate"
	"atlas-overlay/inventory"
	"atlas-overlay/kafka/message"
	feedback2 "atlas-overlay/kafka/message/feedback"
	session2 "atlas-overlay/kafka/message/session"
	"atlas-overlay/kafka/producer"
	"atlas-overlay/transfer"
	"context"
	"errors"
	"time"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HoverDwell is how long a pointer must rest on a slot before the overlay
// announces a tooltip.
const HoverDwell = 500 * time.Millisecond

var ErrGateRejected = errors.New("gate rejected gesture")

// SlotRef names one mirrored cell. Refresh handling reports every rewritten
// cell so an in-flight drag can be checked for staleness.
type SlotRef struct {
	InventoryId string
	Slot        uint32
}

type Processor struct {
	l                  logrus.FieldLogger
	ctx                context.Context
	db                 *gorm.DB
	t                  tenant.Model
	inventoryProcessor *inventory.Processor
	transferProcessor  *transfer.Processor
	feedbackProcessor  *feedback.Processor
	characterProcessor character.Processor
	evaluator          *gate.Evaluator
	registry           *Registry
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:                  l,
		ctx:                ctx,
		db:                 db,
		t:                  tenant.MustFromContext(ctx),
		inventoryProcessor: inventory.NewProcessor(l, ctx, db),
		transferProcessor:  transfer.NewProcessor(l, ctx, db),
		feedbackProcessor:  feedback.NewProcessor(l, ctx),
		characterProcessor: character.NewProcessor(l, ctx),
		evaluator:          gate.NewEvaluator(),
		registry:           GetRegistry(),
	}
	return p
}

func (p *Processor) clone() *Processor {
	return &Processor{
		l:                  p.l,
		ctx:                p.ctx,
		db:                 p.db,
		t:                  p.t,
		inventoryProcessor: p.inventoryProcessor,
		transferProcessor:  p.transferProcessor,
		feedbackProcessor:  p.feedbackProcessor,
		characterProcessor: p.characterProcessor,
		evaluator:          p.evaluator,
		registry:           p.registry,
	}
}

func (p *Processor) WithInventoryProcessor(ip *inventory.Processor) *Processor {
	np := p.clone()
	np.inventoryProcessor = ip
	np.transferProcessor = np.transferProcessor.WithInventoryProcessor(ip)
	return np
}

func (p *Processor) WithTransferProcessor(tp *transfer.Processor) *Processor {
	np := p.clone()
	np.transferProcessor = tp
	return np
}

func (p *Processor) WithCharacterProcessor(cp character.Processor) *Processor {
	np := p.clone()
	np.characterProcessor = cp
	return np
}

func (p *Processor) WithEvaluator(e *gate.Evaluator) *Processor {
	np := p.clone()
	np.evaluator = e
	return np
}

func (p *Processor) GetByCharacterId(characterId uint32) (Model, bool) {
	return p.registry.Get(p.t, characterId)
}

// gateContext captures the viewer facts predicates are allowed to see. The
// player pane supplies funds and held counts, the character service supplies
// group membership, and a miss on either degrades to an empty context that
// fails closed.
func (p *Processor) gateContext(characterId uint32) gate.Context {
	gctx := gate.Context{}

	c, err := p.characterProcessor.GetById(characterId)
	if err != nil {
		p.l.WithError(err).Debugf("Unable to resolve groups for character [%d].", characterId)
	} else {
		gctx.PlayerGroups = c.Groups()
	}

	inv, err := p.inventoryProcessor.GetByType(characterId, inventory.TypePlayer)
	if err != nil {
		p.l.WithError(err).Debugf("No player inventory mirrored for character [%d].", characterId)
		return gctx
	}
	counts := make(map[string]uint32)
	for _, s := range inv.Slots() {
		counts[s.Name()] += s.Count()
	}
	gctx.FundsOf = func(currency string) uint32 {
		return counts[currency]
	}
	gctx.CountOf = func(name string) uint32 {
		return counts[name]
	}
	return gctx
}

// BeginDrag picks an item up. Rejections are silent by design. The renderer
// simply never sees a STARTED event for the gesture.
func (p *Processor) BeginDrag(mb *message.Buffer) func(characterId uint32, inventoryId string, slot uint32) (Model, error) {
	return func(characterId uint32, inventoryId string, slot uint32) (Model, error) {
		inv, err := p.inventoryProcessor.GetById(characterId, inventoryId)
		if err != nil {
			p.l.WithError(err).Debugf("Rejecting pickup from unknown inventory [%s] for character [%d].", inventoryId, characterId)
			return Model{}, ErrGateRejected
		}
		s, _ := inv.SlotAt(slot)
		if !p.evaluator.CanOriginateDrag(inv, s, p.gateContext(characterId)) {
			p.l.Debugf("Rejecting pickup from inventory [%s] slot [%d] for character [%d].", inventoryId, slot, characterId)
			return Model{}, ErrGateRejected
		}

		m := NewBuilder(uuid.New(), characterId).
			SetState(StateDragging).
			SetSource(NewDragSource(inv.Id(), inv.Type(), slot, s.Name())).
			Build()
		m, err = p.registry.Begin(p.t, characterId, m)
		if err != nil {
			p.l.WithError(err).Debugf("Rejecting second pickup for character [%d].", characterId)
			return Model{}, err
		}

		p.registry.DwellTimer(p.t, characterId).Cancel()

		err = mb.Put(session2.EnvEventTopicStatus, StartedEventStatusProvider(m))
		if err != nil {
			return Model{}, err
		}
		p.l.Debugf("Character [%d] started drag [%s] holding [%s].", characterId, m.Id(), m.Source().ItemName())
		return m, nil
	}
}

// Hover records the cell under the pointer. While dragging it tracks the
// prospective drop target. Otherwise it arms the tooltip dwell timer, which
// announces the cell if the pointer is still there when the delay elapses.
func (p *Processor) Hover(characterId uint32, inventoryId string, slot uint32) error {
	if m, ok := p.registry.Get(p.t, characterId); ok && m.State() == StateDragging {
		_, err := p.registry.SetHover(p.t, characterId, NewHoverTarget(inventoryId, slot))
		return err
	}

	p.registry.DwellTimer(p.t, characterId).Schedule(HoverDwell, func() {
		err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
			return buf.Put(session2.EnvEventTopicStatus, TooltipEventStatusProvider(characterId, inventoryId, slot))
		})
		if err != nil {
			p.l.WithError(err).Errorf("Unable to announce tooltip for character [%d].", characterId)
		}
	})
	return nil
}

// ClearHover is the pointer leaving a cell. Any pending tooltip is disarmed.
func (p *Processor) ClearHover(characterId uint32) error {
	p.registry.ClearHover(p.t, characterId)
	p.registry.DwellTimer(p.t, characterId).Cancel()
	return nil
}

// Drop releases the held item onto a target cell. A drop failing the gate
// cancels the session. A drop passing it routes exactly one transfer request
// and completes the session.
func (p *Processor) Drop(mb *message.Buffer) func(characterId uint32, inventoryId string, slot uint32) error {
	return func(characterId uint32, inventoryId string, slot uint32) error {
		m, ok := p.registry.Get(p.t, characterId)
		if !ok {
			p.l.Debugf("Ignoring drop without an active drag for character [%d].", characterId)
			return nil
		}

		p.registry.DwellTimer(p.t, characterId).Cancel()

		inv, err := p.inventoryProcessor.GetById(characterId, inventoryId)
		if err != nil {
			p.l.WithError(err).Debugf("Character [%d] dropped onto unknown inventory [%s].", characterId, inventoryId)
			return p.Cancel(mb)(characterId, session2.CancelReasonReleased)
		}

		if !p.evaluator.CanAcceptDrop(m.Source().InventoryId(), m.Source().Slot(), inv, slot) {
			m, _ = p.registry.End(p.t, characterId)
			p.l.Debugf("Character [%d] drag [%s] rejected at inventory [%s] slot [%d].", characterId, m.Id(), inventoryId, slot)
			return mb.Put(session2.EnvEventTopicStatus, CancelledEventStatusProvider(m, session2.CancelReasonGateRejected))
		}

		m, _ = p.registry.End(p.t, characterId)
		kind, err := p.transferProcessor.Dispatch(mb)(characterId, transfer.NewEndpoint(m.Source().InventoryType(), m.Source().Slot()), transfer.NewEndpoint(inv.Type(), slot))
		if err != nil {
			return err
		}
		err = mb.Put(session2.EnvEventTopicStatus, CompletedEventStatusProvider(m, string(kind)))
		if err != nil {
			return err
		}
		err = p.feedbackProcessor.Play(mb)(characterId, feedback2.CueTransferComplete)
		if err != nil {
			p.l.WithError(err).Debugf("Unable to cue feedback for character [%d].", characterId)
		}
		p.l.Debugf("Character [%d] completed drag [%s] as [%s].", characterId, m.Id(), kind)
		return nil
	}
}

// Cancel tears the session down for the given reason. Safe to call without
// an active session.
func (p *Processor) Cancel(mb *message.Buffer) func(characterId uint32, reason string) error {
	return func(characterId uint32, reason string) error {
		m, ok := p.registry.End(p.t, characterId)
		if !ok {
			return nil
		}
		p.registry.DwellTimer(p.t, characterId).Cancel()
		p.l.Debugf("Character [%d] drag [%s] cancelled. Reason [%s].", characterId, m.Id(), reason)
		return mb.Put(session2.EnvEventTopicStatus, CancelledEventStatusProvider(m, reason))
	}
}

// Invalidate compares rewritten cells against the drag source and cancels
// the session when the held item's origin was touched. Rewrites elsewhere
// never disturb the gesture.
func (p *Processor) Invalidate(mb *message.Buffer) func(characterId uint32, refs []SlotRef) error {
	return func(characterId uint32, refs []SlotRef) error {
		m, ok := p.registry.Get(p.t, characterId)
		if !ok {
			return nil
		}
		for _, ref := range refs {
			if ref.InventoryId == m.Source().InventoryId() && ref.Slot == m.Source().Slot() {
				return p.Cancel(mb)(characterId, session2.CancelReasonStale)
			}
		}
		return nil
	}
}

// Close ends whatever gesture is in flight because the overlay itself is
// going away, and releases the character's dwell timer for good.
func (p *Processor) Close(mb *message.Buffer) func(characterId uint32) error {
	return func(characterId uint32) error {
		err := p.Cancel(mb)(characterId, session2.CancelReasonClosed)
		if err != nil {
			return err
		}
		p.registry.ReleaseDwell(p.t, characterId)
		return nil
	}
}

func (p *Processor) BeginDragAndEmit(characterId uint32, inventoryId string, slot uint32) (Model, error) {
	var m Model
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		m, err = p.BeginDrag(buf)(characterId, inventoryId, slot)
		return err
	})
	return m, err
}

func (p *Processor) DropAndEmit(characterId uint32, inventoryId string, slot uint32) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Drop(buf)(characterId, inventoryId, slot)
	})
}

func (p *Processor) CancelAndEmit(characterId uint32, reason string) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Cancel(buf)(characterId, reason)
	})
}

func (p *Processor) InvalidateAndEmit(characterId uint32, refs []SlotRef) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Invalidate(buf)(characterId, refs)
	})
}

func (p *Processor) CloseAndEmit(characterId uint32) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Close(buf)(characterId)
	})
}
