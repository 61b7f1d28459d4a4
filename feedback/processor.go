package feedback

import (
	"atlas-overlay/kafka/message"
	feedback2 "atlas-overlay/kafka/message/feedback"
	"context"

	"github.com/sirupsen/logrus"
)

type Processor struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context) *Processor {
	p := &Processor{
		l:   l,
		ctx: ctx,
	}
	return p
}

// Play cues a one-shot effect for the character. Callers treat this as fire
// and forget. A lost cue never blocks the gesture that triggered it.
func (p *Processor) Play(mb *message.Buffer) func(characterId uint32, cue string) error {
	return func(characterId uint32, cue string) error {
		return mb.Put(feedback2.EnvCommandTopic, PlayCommandProvider(characterId, cue))
	}
}
