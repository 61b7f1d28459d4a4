package message

import (
	"sync"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// Buffer accumulates outbound messages keyed by topic token so that a unit of
// work can stage everything it wants to say and emit it in one pass.
type Buffer struct {
	lock   sync.Mutex
	buffer map[string][]kafka.Message
}

func NewBuffer() *Buffer {
	return &Buffer{
		buffer: make(map[string][]kafka.Message),
	}
}

func (b *Buffer) Put(t string, provider model.Provider[[]kafka.Message]) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	ms, err := provider()
	if err != nil {
		return err
	}
	b.buffer[t] = append(b.buffer[t], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	b.lock.Lock()
	defer b.lock.Unlock()

	out := make(map[string][]kafka.Message, len(b.buffer))
	for t, ms := range b.buffer {
		out[t] = ms
	}
	return out
}

// Emit runs f against a fresh buffer and flushes the staged messages through
// the supplied producer when f succeeds.
func Emit(p producer.Provider) func(f func(buf *Buffer) error) error {
	return func(f func(buf *Buffer) error) error {
		b := NewBuffer()
		if err := f(b); err != nil {
			return err
		}
		for t, ms := range b.GetAll() {
			if err := p(t)(model.FixedProvider(ms)); err != nil {
				return err
			}
		}
		return nil
	}
}
