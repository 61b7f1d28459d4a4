package inventory

import (
	inventory2 "atlas-overlay/kafka/message/inventory"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func ReplacedEventStatusProvider(characterId uint32, inventoryIds []string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &inventory2.StatusEvent[inventory2.ReplacedStatusEventBody]{
		CharacterId: characterId,
		Type:        inventory2.StatusEventTypeReplaced,
		Body: inventory2.ReplacedStatusEventBody{
			Inventories: inventoryIds,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func SlotUpdatedEventStatusProvider(characterId uint32, inventoryId string, slot uint32, itemName string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &inventory2.StatusEvent[inventory2.SlotUpdatedStatusEventBody]{
		CharacterId: characterId,
		Type:        inventory2.StatusEventTypeSlotUpdated,
		Body: inventory2.SlotUpdatedStatusEventBody{
			InventoryId: inventoryId,
			Slot:        slot,
			ItemName:    itemName,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func VisibilityEventStatusProvider(characterId uint32, visible bool) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &inventory2.StatusEvent[inventory2.VisibilityStatusEventBody]{
		CharacterId: characterId,
		Type:        inventory2.StatusEventTypeVisibility,
		Body: inventory2.VisibilityStatusEventBody{
			Visible: visible,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func ClosedEventStatusProvider(characterId uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &inventory2.StatusEvent[inventory2.ClosedStatusEventBody]{
		CharacterId: characterId,
		Type:        inventory2.StatusEventTypeClosed,
		Body:        inventory2.ClosedStatusEventBody{},
	}
	return producer.SingleMessageProvider(key, value)
}
