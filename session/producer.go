package session

import (
	session2 "atlas-overlay/kafka/message/session"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func StartedEventStatusProvider(m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.CharacterId()))
	value := &session2.StatusEvent[session2.StartedStatusEventBody]{
		CharacterId: m.CharacterId(),
		SessionId:   m.Id(),
		Type:        session2.StatusEventTypeStarted,
		Body: session2.StartedStatusEventBody{
			InventoryId: m.Source().InventoryId(),
			Slot:        m.Source().Slot(),
			ItemName:    m.Source().ItemName(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func CompletedEventStatusProvider(m Model, kind string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.CharacterId()))
	value := &session2.StatusEvent[session2.CompletedStatusEventBody]{
		CharacterId: m.CharacterId(),
		SessionId:   m.Id(),
		Type:        session2.StatusEventTypeCompleted,
		Body: session2.CompletedStatusEventBody{
			Kind: kind,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func CancelledEventStatusProvider(m Model, reason string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.CharacterId()))
	value := &session2.StatusEvent[session2.CancelledStatusEventBody]{
		CharacterId: m.CharacterId(),
		SessionId:   m.Id(),
		Type:        session2.StatusEventTypeCancelled,
		Body: session2.CancelledStatusEventBody{
			Reason: reason,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func TooltipEventStatusProvider(characterId uint32, inventoryId string, slot uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &session2.StatusEvent[session2.TooltipStatusEventBody]{
		CharacterId: characterId,
		SessionId:   uuid.Nil,
		Type:        session2.StatusEventTypeTooltip,
		Body: session2.TooltipStatusEventBody{
			InventoryId: inventoryId,
			Slot:        slot,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
