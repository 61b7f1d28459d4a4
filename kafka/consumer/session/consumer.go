package session

import (
	consumer2 "atlas-overlay/kafka/consumer"
	session2 "atlas-overlay/kafka/message/session"
	"atlas-overlay/session"
	"atlas-overlay/transfer"
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
			rf(consumer2.NewConfig(l)("session_command")(session2.EnvCommandTopic)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
		return func(rf func(topic string, handler handler.Handler) (string, error)) {
			var t string
			t, _ = topic.EnvProvider(l)(session2.EnvCommandTopic)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleBeginDragCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleHoverCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleClearHoverCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleDropCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleCancelCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleQuickDropCommand(db))))
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleQuickUseCommand(db))))
		}
	}
}

func handleBeginDragCommand(db *gorm.DB) message.Handler[session2.Command[session2.BeginDragCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.BeginDragCommandBody]) {
		if c.Type != session2.CommandBeginDrag {
			return
		}
		_, _ = session.NewProcessor(l, ctx, db).BeginDragAndEmit(c.CharacterId, c.Body.InventoryId, c.Body.Slot)
	}
}

func handleHoverCommand(db *gorm.DB) message.Handler[session2.Command[session2.HoverCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.HoverCommandBody]) {
		if c.Type != session2.CommandHover {
			return
		}
		_ = session.NewProcessor(l, ctx, db).Hover(c.CharacterId, c.Body.InventoryId, c.Body.Slot)
	}
}

func handleClearHoverCommand(db *gorm.DB) message.Handler[session2.Command[session2.ClearHoverCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.ClearHoverCommandBody]) {
		if c.Type != session2.CommandClearHover {
			return
		}
		_ = session.NewProcessor(l, ctx, db).ClearHover(c.CharacterId)
	}
}

func handleDropCommand(db *gorm.DB) message.Handler[session2.Command[session2.DropCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.DropCommandBody]) {
		if c.Type != session2.CommandDrop {
			return
		}
		_ = session.NewProcessor(l, ctx, db).DropAndEmit(c.CharacterId, c.Body.InventoryId, c.Body.Slot)
	}
}

func handleCancelCommand(db *gorm.DB) message.Handler[session2.Command[session2.CancelCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.CancelCommandBody]) {
		if c.Type != session2.CommandCancel {
			return
		}
		_ = session.NewProcessor(l, ctx, db).CancelAndEmit(c.CharacterId, session2.CancelReasonReleased)
	}
}

func handleQuickDropCommand(db *gorm.DB) message.Handler[session2.Command[session2.QuickDropCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.QuickDropCommandBody]) {
		if c.Type != session2.CommandQuickDrop {
			return
		}
		_ = transfer.NewProcessor(l, ctx, db).QuickDropAndEmit(c.CharacterId, c.Body.InventoryId, c.Body.Slot)
	}
}

func handleQuickUseCommand(db *gorm.DB) message.Handler[session2.Command[session2.QuickUseCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c session2.Command[session2.QuickUseCommandBody]) {
		if c.Type != session2.CommandQuickUse {
			return
		}
		_ = transfer.NewProcessor(l, ctx, db).QuickUseAndEmit(c.CharacterId, c.Body.InventoryId, c.Body.Slot)
	}
}
