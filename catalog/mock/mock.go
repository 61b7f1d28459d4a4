package mock

import (
	"atlas-overlay/catalog"
)

type ProcessorImpl struct {
	GetByNameFn func(name string) (catalog.Model, error)
}

func (p *ProcessorImpl) GetByName(name string) (catalog.Model, error) {
	return p.GetByNameFn(name)
}
