package mock

import (
	"atlas-overlay/character"
)

type ProcessorImpl struct {
	GetByIdFn func(characterId uint32) (character.Model, error)
}

func (p *ProcessorImpl) GetById(characterId uint32) (character.Model, error) {
	return p.GetByIdFn(characterId)
}
