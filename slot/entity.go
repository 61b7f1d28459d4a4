package slot

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId    uuid.UUID `gorm:"not null;uniqueIndex:idx_slot_cell"`
	Id          uint32    `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId uint32    `gorm:"not null;uniqueIndex:idx_slot_cell"`
	InventoryId string    `gorm:"not null;uniqueIndex:idx_slot_cell"`
	Slot        uint32    `gorm:"not null;uniqueIndex:idx_slot_cell"`
	ItemName    string    `gorm:"not null"`
	Count       uint32    `gorm:"not null"`
	Weight      uint32    `gorm:"not null"`
	Price       uint32    `gorm:"not null"`
	Currency    string    `gorm:"not null"`
	Metadata    string    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "slots"
}

func Make(e Entity) (Model, error) {
	md := Metadata{}
	if e.Metadata != "" {
		if err := json.Unmarshal([]byte(e.Metadata), &md); err != nil {
			return Model{}, err
		}
	}
	return NewBuilder(e.Slot, e.ItemName, e.Count).
		SetWeight(e.Weight).
		SetPrice(e.Price).
		SetCurrency(e.Currency).
		SetMetadata(md).
		Build(), nil
}
