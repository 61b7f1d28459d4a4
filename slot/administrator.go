package slot

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, tenantId uuid.UUID, characterId uint32, inventoryId string, m Model) (Model, error) {
	md, err := json.Marshal(m.Metadata())
	if err != nil {
		return Model{}, err
	}
	e := &Entity{
		TenantId:    tenantId,
		CharacterId: characterId,
		InventoryId: inventoryId,
		Slot:        m.Index(),
		ItemName:    m.Name(),
		Count:       m.Count(),
		Weight:      m.Weight(),
		Price:       m.Price(),
		Currency:    m.Currency(),
		Metadata:    string(md),
	}
	err = db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteBySlot(db *gorm.DB, tenantId uuid.UUID, characterId uint32, inventoryId string, slot uint32) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId, InventoryId: inventoryId, Slot: slot}).Delete(&Entity{}).Error
}

func deleteByInventoryId(db *gorm.DB, tenantId uuid.UUID, characterId uint32, inventoryId string) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId, InventoryId: inventoryId}).Delete(&Entity{}).Error
}

func deleteByCharacterId(db *gorm.DB, tenantId uuid.UUID, characterId uint32) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId}).Delete(&Entity{}).Error
}
