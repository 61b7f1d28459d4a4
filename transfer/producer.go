package transfer

import (
	"atlas-overlay/kafka/message/bridge"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func endpointBody(e Endpoint) bridge.EndpointBody {
	return bridge.EndpointBody{
		Inventory: string(e.Type()),
		Item: bridge.ItemBody{
			Slot: e.Slot(),
		},
	}
}

func MoveRequestProvider(characterId uint32, transactionId uuid.UUID, source Endpoint, target Endpoint) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &bridge.Request[bridge.MoveRequestBody]{
		CharacterId:   characterId,
		TransactionId: transactionId,
		Type:          bridge.RequestTypeMove,
		Body: bridge.MoveRequestBody{
			Source: endpointBody(source),
			Target: endpointBody(target),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func PurchaseRequestProvider(characterId uint32, transactionId uuid.UUID, source Endpoint, target Endpoint) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &bridge.Request[bridge.PurchaseRequestBody]{
		CharacterId:   characterId,
		TransactionId: transactionId,
		Type:          bridge.RequestTypePurchase,
		Body: bridge.PurchaseRequestBody{
			Source: endpointBody(source),
			Target: endpointBody(target),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func CraftRequestProvider(characterId uint32, transactionId uuid.UUID, source Endpoint, target Endpoint) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &bridge.Request[bridge.CraftRequestBody]{
		CharacterId:   characterId,
		TransactionId: transactionId,
		Type:          bridge.RequestTypeCraft,
		Body: bridge.CraftRequestBody{
			Source: endpointBody(source),
			Target: endpointBody(target),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func UseRequestProvider(characterId uint32, transactionId uuid.UUID, slot uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &bridge.Request[bridge.UseRequestBody]{
		CharacterId:   characterId,
		TransactionId: transactionId,
		Type:          bridge.RequestTypeUse,
		Body: bridge.UseRequestBody{
			Item: bridge.ItemBody{
				Slot: slot,
			},
		},
	}
	return producer.SingleMessageProvider(key, value)
}
