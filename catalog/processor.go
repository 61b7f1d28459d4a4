package catalog

import (
	"context"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/requests"
	"github.com/sirupsen/logrus"
)

type Processor interface {
	GetByName(name string) (Model, error)
}

type ProcessorImpl struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context) *ProcessorImpl {
	p := &ProcessorImpl{
		l:   l,
		ctx: ctx,
	}
	return p
}

func (p *ProcessorImpl) ByNameModelProvider(name string) model.Provider[Model] {
	return requests.Provider[RestModel, Model](p.l, p.ctx)(requestByName(name), Extract)
}

func (p *ProcessorImpl) GetByName(name string) (Model, error) {
	return p.ByNameModelProvider(name)()
}
