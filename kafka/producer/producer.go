package producer

import (
	"context"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/sirupsen/logrus"
)

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) producer.Provider {
	return func(ctx context.Context) producer.Provider {
		return producer.ProviderImpl(l)(ctx)
	}
}
