package inventory

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, tenantId uuid.UUID, m Model) (Model, error) {
	groups, err := json.Marshal(m.Groups())
	if err != nil {
		return Model{}, err
	}
	e := &Entity{
		TenantId:      tenantId,
		CharacterId:   m.CharacterId(),
		InventoryId:   m.Id(),
		InventoryType: string(m.Type()),
		Label:         m.Label(),
		Groups:        string(groups),
		Capacity:      m.Capacity(),
		MaxWeight:     m.MaxWeight(),
		Side:          string(m.Side()),
	}
	err = db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteByCharacterId(db *gorm.DB, tenantId uuid.UUID, characterId uint32) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId}).Delete(&Entity{}).Error
}
