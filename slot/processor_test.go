package slot_test

import (
	"atlas-overlay/catalog"
	catalogMock "atlas-overlay/catalog/mock"
	"atlas-overlay/slot"
	"context"
	"errors"
	"testing"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := slot.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testTenant() tenant.Model {
	t, _ := tenant.Create(uuid.New(), "GMS", 83, 1)
	return t
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func catalogEntry(label string, weight uint32, rarity string) *catalogMock.ProcessorImpl {
	return &catalogMock.ProcessorImpl{
		GetByNameFn: func(name string) (catalog.Model, error) {
			return catalog.Extract(catalog.RestModel{Id: name, Label: label, Weight: weight, Rarity: rarity})
		},
	}
}

func TestDecorationResolvesCatalogEntry(t *testing.T) {
	characterId := uint32(50)
	inventoryId := "player-50"

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(catalogEntry("Fresh Bread", 7, "rare"))

	_, err := p.Replace(characterId, inventoryId, slot.NewBuilder(1, "bread", 2).Build())
	if err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}
	s, err := p.GetBySlot(characterId, inventoryId, 1)
	if err != nil {
		t.Fatalf("Failed to get slot: %v", err)
	}
	if s.Label() != "Fresh Bread" {
		t.Fatalf("Label [%s], want the catalog label", s.Label())
	}
	if s.Rarity() != catalog.RarityRare {
		t.Fatalf("Rarity [%s], want the catalog rarity", s.Rarity())
	}
	if s.Weight() != 7 {
		t.Fatalf("Weight [%d], want the catalog weight when none was pushed", s.Weight())
	}

	_, err = p.Replace(characterId, inventoryId, slot.NewBuilder(2, "bread", 1).SetWeight(5).Build())
	if err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}
	s, err = p.GetBySlot(characterId, inventoryId, 2)
	if err != nil {
		t.Fatalf("Failed to get slot: %v", err)
	}
	if s.Weight() != 5 {
		t.Fatalf("Weight [%d], want the pushed weight to win", s.Weight())
	}
}

func TestDecorationPrefersStackMetadata(t *testing.T) {
	characterId := uint32(51)
	inventoryId := "player-51"

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(catalogEntry("Fresh Bread", 7, "rare"))

	m := slot.NewBuilder(1, "bread", 1).
		SetMetadata(slot.Metadata{slot.MetadataLabel: "Moldy Bread", slot.MetadataRarity: "epic"}).
		Build()
	if _, err := p.Replace(characterId, inventoryId, m); err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}

	s, err := p.GetBySlot(characterId, inventoryId, 1)
	if err != nil {
		t.Fatalf("Failed to get slot: %v", err)
	}
	if s.Label() != "Moldy Bread" {
		t.Fatalf("Label [%s], want the stack metadata to win", s.Label())
	}
	if s.Rarity() != catalog.RarityEpic {
		t.Fatalf("Rarity [%s], want the stack metadata to win", s.Rarity())
	}
}

func TestDecorationToleratesCatalogMiss(t *testing.T) {
	characterId := uint32(52)
	inventoryId := "player-52"

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	cp := &catalogMock.ProcessorImpl{
		GetByNameFn: func(name string) (catalog.Model, error) {
			return catalog.Model{}, errors.New("not found")
		},
	}
	p := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(cp)

	if _, err := p.Replace(characterId, inventoryId, slot.NewBuilder(1, "bread", 1).Build()); err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}

	s, err := p.GetBySlot(characterId, inventoryId, 1)
	if err != nil {
		t.Fatalf("Failed to get slot: %v", err)
	}
	if s.Label() != "bread" {
		t.Fatalf("Label [%s], want the raw name on a catalog miss", s.Label())
	}
	if s.Rarity() != catalog.RarityCommon {
		t.Fatalf("Rarity [%s], want common on a catalog miss", s.Rarity())
	}
}

func TestReplaceOverwritesCell(t *testing.T) {
	characterId := uint32(53)
	inventoryId := "player-53"

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	cp := &catalogMock.ProcessorImpl{
		GetByNameFn: func(name string) (catalog.Model, error) {
			return catalog.Model{}, errors.New("not found")
		},
	}
	p := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(cp)

	if _, err := p.Replace(characterId, inventoryId, slot.NewBuilder(4, "bread", 1).Build()); err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}
	if _, err := p.Replace(characterId, inventoryId, slot.NewBuilder(4, "water", 2).Build()); err != nil {
		t.Fatalf("Failed to replace slot: %v", err)
	}

	ss, err := p.GetByInventoryId(characterId, inventoryId)
	if err != nil {
		t.Fatalf("Failed to get slots: %v", err)
	}
	if len(ss) != 1 || ss[0].Name() != "water" {
		t.Fatalf("Replace must overwrite the cell, got %d rows", len(ss))
	}

	if err = p.Clear(characterId, inventoryId, 4); err != nil {
		t.Fatalf("Failed to clear slot: %v", err)
	}
	if _, err = p.GetBySlot(characterId, inventoryId, 4); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Cleared cell must be gone, got %v", err)
	}
}
