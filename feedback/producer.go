package feedback

import (
	"atlas-overlay/kafka/message/feedback"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func PlayCommandProvider(characterId uint32, cue string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &feedback.Command[feedback.PlayCommandBody]{
		CharacterId: characterId,
		Type:        feedback.CommandPlay,
		Body: feedback.PlayCommandBody{
			Cue: cue,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
