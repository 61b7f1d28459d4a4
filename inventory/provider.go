package inventory

import (
	"atlas-overlay/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByCharacterId(tenantId uuid.UUID, characterId uint32) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db.Order("side"), &Entity{TenantId: tenantId, CharacterId: characterId})
	}
}

func getById(tenantId uuid.UUID, characterId uint32, inventoryId string) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, &Entity{TenantId: tenantId, CharacterId: characterId, InventoryId: inventoryId})
	}
}

func getByType(tenantId uuid.UUID, characterId uint32, inventoryType Type) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db, &Entity{TenantId: tenantId, CharacterId: characterId, InventoryType: string(inventoryType)})
	}
}
