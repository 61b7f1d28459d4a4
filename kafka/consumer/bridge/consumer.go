package bridge

import (
	"atlas-overlay/inventory"
	consumer2 "atlas-overlay/kafka/consumer"
	bridge2 "atlas-overlay/kafka/message/bridge"
	"atlas-overlay/session"
	"context"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(consumer2.NewConfig(l)("bridge_event")(bridge2.EnvEventTopic)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
		return func(rf func(topic string, handler handler.Handler) (string, error)) {
			var t string
			t, _ = topic.EnvProvider(l)(bridge2.EnvEventTopic)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSetupInventoryEvent(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleRefreshSlotsEvent(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleDisplayMetadataEvent(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleSetInventoryVisibleEvent(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleCloseInventoryEvent(db))))
		}
	}
}

func snapshotInput(b *bridge2.InventoryBody) *inventory.SnapshotInput {
	if b == nil {
		return nil
	}
	items := make([]inventory.SlotInput, 0, len(b.Items))
	for _, i := range b.Items {
		items = append(items, slotInput(i))
	}
	return &inventory.SnapshotInput{
		Id:        b.Id,
		Type:      b.Type,
		Label:     b.Label,
		Groups:    b.Groups,
		Capacity:  b.Slots,
		MaxWeight: b.MaxWeight,
		Items:     items,
	}
}

func slotInput(b bridge2.SlotBody) inventory.SlotInput {
	return inventory.SlotInput{
		Index:    b.Slot,
		Name:     b.Name,
		Count:    b.Count,
		Weight:   b.Weight,
		Price:    b.Price,
		Currency: b.Currency,
		Metadata: b.Metadata,
	}
}

func handleSetupInventoryEvent(db *gorm.DB) message.Handler[bridge2.Event[bridge2.SetupInventoryEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e bridge2.Event[bridge2.SetupInventoryEventBody]) {
		if e.Type != bridge2.EventTypeSetupInventory {
			return
		}
		_, _ = inventory.NewProcessor(l, ctx, db).SetupAndEmit(e.CharacterId, snapshotInput(e.Body.LeftInventory), snapshotInput(e.Body.RightInventory))
	}
}

// handleRefreshSlotsEvent invalidates any drag whose source is being
// rewritten before the mirror changes underneath it.
func handleRefreshSlotsEvent(db *gorm.DB) message.Handler[bridge2.Event[bridge2.RefreshSlotsEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e bridge2.Event[bridge2.RefreshSlotsEventBody]) {
		if e.Type != bridge2.EventTypeRefreshSlots {
			return
		}
		refs := make([]session.SlotRef, 0, len(e.Body.Items))
		updates := make([]inventory.SlotRefreshInput, 0, len(e.Body.Items))
		for _, i := range e.Body.Items {
			refs = append(refs, session.SlotRef{InventoryId: i.InventoryId, Slot: i.Item.Slot})
			updates = append(updates, inventory.SlotRefreshInput{InventoryId: i.InventoryId, Item: slotInput(i.Item)})
		}
		_ = session.NewProcessor(l, ctx, db).InvalidateAndEmit(e.CharacterId, refs)
		_ = inventory.NewProcessor(l, ctx, db).ApplyRefreshAndEmit(e.CharacterId, updates)
	}
}

func handleDisplayMetadataEvent(db *gorm.DB) message.Handler[bridge2.Event[[]bridge2.DisplayMetadataBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e bridge2.Event[[]bridge2.DisplayMetadataBody]) {
		if e.Type != bridge2.EventTypeDisplayMetadata {
			return
		}
		entries := make([]inventory.DisplayEntry, 0, len(e.Body))
		for _, b := range e.Body {
			entries = append(entries, inventory.DisplayEntry{Metadata: b.Metadata, Value: b.Value})
		}
		inventory.NewProcessor(l, ctx, db).SetDisplayMetadata(e.CharacterId, entries)
	}
}

func handleSetInventoryVisibleEvent(db *gorm.DB) message.Handler[bridge2.Event[bridge2.SetInventoryVisibleEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e bridge2.Event[bridge2.SetInventoryVisibleEventBody]) {
		if e.Type != bridge2.EventTypeSetInventoryVisible {
			return
		}
		_ = inventory.NewProcessor(l, ctx, db).SetVisibleAndEmit(e.CharacterId, e.Body.Visible)
	}
}

// handleCloseInventoryEvent cancels the in-flight drag first so the renderer
// sees the gesture die before the panes disappear.
func handleCloseInventoryEvent(db *gorm.DB) message.Handler[bridge2.Event[bridge2.CloseInventoryEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, e bridge2.Event[bridge2.CloseInventoryEventBody]) {
		if e.Type != bridge2.EventTypeCloseInventory {
			return
		}
		_ = session.NewProcessor(l, ctx, db).CloseAndEmit(e.CharacterId)
		_ = inventory.NewProcessor(l, ctx, db).CloseAndEmit(e.CharacterId)
	}
}
