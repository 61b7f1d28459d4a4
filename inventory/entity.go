package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId      uuid.UUID `gorm:"not null;uniqueIndex:idx_inventory_identity"`
	Id            uint32    `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId   uint32    `gorm:"not null;uniqueIndex:idx_inventory_identity"`
	InventoryId   string    `gorm:"not null;uniqueIndex:idx_inventory_identity"`
	InventoryType string    `gorm:"not null"`
	Label         string    `gorm:"not null"`
	Groups        string    `gorm:"not null"`
	Capacity      uint32    `gorm:"not null"`
	MaxWeight     uint32    `gorm:"not null"`
	Side          string    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "inventories"
}

func Make(e Entity) (Model, error) {
	it, ok := TypeFromString(e.InventoryType)
	if !ok {
		return Model{}, fmt.Errorf("unknown inventory type [%s]", e.InventoryType)
	}
	groups := make(map[string]byte)
	if e.Groups != "" {
		if err := json.Unmarshal([]byte(e.Groups), &groups); err != nil {
			return Model{}, err
		}
	}
	return NewBuilder(e.InventoryId, e.CharacterId, it, e.Capacity).
		SetLabel(e.Label).
		SetGroups(groups).
		SetMaxWeight(e.MaxWeight).
		SetSide(Side(e.Side)).
		Build(), nil
}
