package transfer

import (
	"atlas-overlay/inventory"
	"atlas-overlay/kafka/message"
	"atlas-overlay/kafka/message/bridge"
	"atlas-overlay/kafka/producer"
	"context"
	"errors"
	"fmt"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Classify maps the origin of a gesture to the request kind the server
// expects. Dragging out of a shop is an offer to buy and dragging out of a
// crafting bench is an offer to craft. Every other origin moves the item.
func Classify(sourceType inventory.Type) Kind {
	switch sourceType {
	case inventory.TypeShop:
		return KindPurchase
	case inventory.TypeCrafting:
		return KindCraft
	case inventory.TypePlayer, inventory.TypeContainer, inventory.TypeGlovebox, inventory.TypeTrunk, inventory.TypeGround, inventory.TypeHotbar:
		return KindMove
	}
	return KindMove
}

type Processor struct {
	l                  logrus.FieldLogger
	ctx                context.Context
	db                 *gorm.DB
	t                  tenant.Model
	inventoryProcessor *inventory.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:                  l,
		ctx:                ctx,
		db:                 db,
		t:                  tenant.MustFromContext(ctx),
		inventoryProcessor: inventory.NewProcessor(l, ctx, db),
	}
	return p
}

func (p *Processor) WithInventoryProcessor(ip *inventory.Processor) *Processor {
	return &Processor{
		l:                  p.l,
		ctx:                p.ctx,
		db:                 p.db,
		t:                  p.t,
		inventoryProcessor: ip,
	}
}

// Dispatch emits exactly one server request for a completed gesture and
// reports the kind it resolved to.
func (p *Processor) Dispatch(mb *message.Buffer) func(characterId uint32, source Endpoint, target Endpoint) (Kind, error) {
	return func(characterId uint32, source Endpoint, target Endpoint) (Kind, error) {
		kind := Classify(source.Type())
		transactionId := uuid.New()
		var err error
		switch kind {
		case KindMove:
			err = mb.Put(bridge.EnvCommandTopic, MoveRequestProvider(characterId, transactionId, source, target))
		case KindPurchase:
			err = mb.Put(bridge.EnvCommandTopic, PurchaseRequestProvider(characterId, transactionId, source, target))
		case KindCraft:
			err = mb.Put(bridge.EnvCommandTopic, CraftRequestProvider(characterId, transactionId, source, target))
		default:
			err = fmt.Errorf("no request for transfer kind [%s]", kind)
		}
		if err != nil {
			return kind, err
		}
		p.l.Debugf("Routed [%s] request [%s] for character [%d] from [%s] slot [%d] to [%s] slot [%d].", kind, transactionId, characterId, source.Type(), source.Slot(), target.Type(), target.Slot())
		return kind, nil
	}
}

func (p *Processor) occupiedPlayerSlot(characterId uint32, inventoryId string, slotIndex uint32) (inventory.Model, error) {
	inv, err := p.inventoryProcessor.GetById(characterId, inventoryId)
	if err != nil {
		return inventory.Model{}, err
	}
	if inv.Type() != inventory.TypePlayer {
		return inventory.Model{}, errors.New("quick gestures only act on the player inventory")
	}
	s, ok := inv.SlotAt(slotIndex)
	if !ok || !s.Occupied() {
		return inventory.Model{}, errors.New("slot is empty")
	}
	return inv, nil
}

// QuickDrop shortcuts a held item straight to the ground without a drag. The
// server decides where the dropped stack lands.
func (p *Processor) QuickDrop(mb *message.Buffer) func(characterId uint32, inventoryId string, slotIndex uint32) error {
	return func(characterId uint32, inventoryId string, slotIndex uint32) error {
		_, err := p.occupiedPlayerSlot(characterId, inventoryId, slotIndex)
		if err != nil {
			p.l.WithError(err).Debugf("Ignoring quick drop from inventory [%s] slot [%d] for character [%d].", inventoryId, slotIndex, characterId)
			return err
		}
		_, err = p.Dispatch(mb)(characterId, NewEndpoint(inventory.TypePlayer, slotIndex), NewEndpoint(inventory.TypeGround, GroundSlot))
		return err
	}
}

// QuickUse asks the server to consume the item in place.
func (p *Processor) QuickUse(mb *message.Buffer) func(characterId uint32, inventoryId string, slotIndex uint32) error {
	return func(characterId uint32, inventoryId string, slotIndex uint32) error {
		_, err := p.occupiedPlayerSlot(characterId, inventoryId, slotIndex)
		if err != nil {
			p.l.WithError(err).Debugf("Ignoring quick use of inventory [%s] slot [%d] for character [%d].", inventoryId, slotIndex, characterId)
			return err
		}
		return mb.Put(bridge.EnvCommandTopic, UseRequestProvider(characterId, uuid.New(), slotIndex))
	}
}

func (p *Processor) QuickDropAndEmit(characterId uint32, inventoryId string, slotIndex uint32) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.QuickDrop(buf)(characterId, inventoryId, slotIndex)
	})
}

func (p *Processor) QuickUseAndEmit(characterId uint32, inventoryId string, slotIndex uint32) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.QuickUse(buf)(characterId, inventoryId, slotIndex)
	})
}
