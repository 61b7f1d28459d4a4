package slot

import (
	"atlas-overlay/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByInventoryId(tenantId uuid.UUID, characterId uint32, inventoryId string) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.SliceQuery[Entity](db.Order("slot"), &Entity{TenantId: tenantId, CharacterId: characterId, InventoryId: inventoryId})
	}
}

func getBySlot(tenantId uuid.UUID, characterId uint32, inventoryId string, slot uint32) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, &Entity{TenantId: tenantId, CharacterId: characterId, InventoryId: inventoryId, Slot: slot})
	}
}
