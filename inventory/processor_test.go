package inventory_test

import (
	"atlas-overlay/catalog"
	catalogMock "atlas-overlay/catalog/mock"
	"atlas-overlay/inventory"
	"atlas-overlay/kafka/message"
	inventory2 "atlas-overlay/kafka/message/inventory"
	"atlas-overlay/slot"
	"context"
	"encoding/json"
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

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, inventory.Migration, slot.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
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

func testProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *inventory.Processor {
	cp := &catalogMock.ProcessorImpl{
		GetByNameFn: func(name string) (catalog.Model, error) {
			return catalog.Model{}, errors.New("not found")
		},
	}
	sp := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(cp)
	return inventory.NewProcessor(l, ctx, db).WithSlotProcessor(sp)
}

func TestSetupReplacesMirrorWholesale(t *testing.T) {
	characterId := uint32(20)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-20",
		Type:     "player",
		Capacity: 10,
		Items:    []inventory.SlotInput{{Index: 3, Name: "bread", Count: 2, Weight: 5}},
	}, &inventory.SnapshotInput{
		Id:       "shop-20",
		Type:     "shop",
		Label:    "Bakery",
		Capacity: 5,
		Items:    []inventory.SlotInput{{Index: 1, Name: "bread", Count: 50, Price: 2}},
	})
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	ms, err := p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to get inventories: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("Expected two mirrored inventories, got %d", len(ms))
	}

	mb = message.NewBuffer()
	_, err = p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "trunk-20",
		Type:     "trunk",
		Capacity: 8,
	}, nil)
	if err != nil {
		t.Fatalf("Failed to replace mirror: %v", err)
	}

	ms, err = p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to get inventories: %v", err)
	}
	if len(ms) != 1 || ms[0].Id() != "trunk-20" {
		t.Fatalf("Mirror was not replaced wholesale")
	}
	if _, err = p.GetById(characterId, "player-20"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Prior pane must be gone, got %v", err)
	}

	events := mb.GetAll()[inventory2.EnvEventTopicStatus]
	if len(events) != 1 {
		t.Fatalf("Expected one status event, got %d", len(events))
	}
	var e inventory2.StatusEvent[inventory2.ReplacedStatusEventBody]
	if err = json.Unmarshal(events[0].Value, &e); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if e.Type != inventory2.StatusEventTypeReplaced {
		t.Fatalf("Event type [%s], want REPLACED", e.Type)
	}
	if len(e.Body.Inventories) != 1 || e.Body.Inventories[0] != "trunk-20" {
		t.Fatalf("Unexpected replaced inventories %+v", e.Body.Inventories)
	}
}

func TestSetupRejectsUnknownInventoryType(t *testing.T) {
	characterId := uint32(21)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "vending-21",
		Type:     "vending",
		Capacity: 4,
	}, nil)
	if err == nil {
		t.Fatalf("Setup with an unknown inventory type must fail")
	}

	ms, err := p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to get inventories: %v", err)
	}
	if len(ms) != 0 {
		t.Fatalf("Rejected setup must not leave partial state")
	}
}

func TestApplyRefreshReplacesAndClears(t *testing.T) {
	characterId := uint32(22)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-22",
		Type:     "player",
		Capacity: 10,
		Items:    []inventory.SlotInput{{Index: 2, Name: "bread", Count: 2}},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	mb = message.NewBuffer()
	err = p.ApplyRefresh(mb)(characterId, []inventory.SlotRefreshInput{
		{InventoryId: "player-22", Item: inventory.SlotInput{Index: 2}},
		{InventoryId: "player-22", Item: inventory.SlotInput{Index: 5, Name: "water", Count: 1}},
		{InventoryId: "missing-22", Item: inventory.SlotInput{Index: 1, Name: "ghost", Count: 1}},
		{InventoryId: "player-22", Item: inventory.SlotInput{Index: 99, Name: "oob", Count: 1}},
	})
	if err != nil {
		t.Fatalf("Failed to apply refresh: %v", err)
	}

	m, err := p.GetById(characterId, "player-22")
	if err != nil {
		t.Fatalf("Failed to get inventory: %v", err)
	}
	if _, ok := m.SlotAt(2); ok {
		t.Fatalf("Cleared slot must be empty")
	}
	s, ok := m.SlotAt(5)
	if !ok || s.Name() != "water" {
		t.Fatalf("Refreshed slot must hold the pushed item")
	}

	events := mb.GetAll()[inventory2.EnvEventTopicStatus]
	if len(events) != 2 {
		t.Fatalf("Expected two slot events, got %d", len(events))
	}
	var e inventory2.StatusEvent[inventory2.SlotUpdatedStatusEventBody]
	if err = json.Unmarshal(events[0].Value, &e); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if e.Type != inventory2.StatusEventTypeSlotUpdated {
		t.Fatalf("Event type [%s], want SLOT_UPDATED", e.Type)
	}
}

func TestSetVisibleTogglesAndAnnounces(t *testing.T) {
	characterId := uint32(23)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-23",
		Type:     "player",
		Capacity: 10,
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}
	if !inventory.GetVisibilityRegistry().Get(te, characterId) {
		t.Fatalf("Setup must leave the overlay visible")
	}

	mb = message.NewBuffer()
	if err = p.SetVisible(mb)(characterId, false); err != nil {
		t.Fatalf("Failed to set visibility: %v", err)
	}
	if inventory.GetVisibilityRegistry().Get(te, characterId) {
		t.Fatalf("Visibility must track the pushed flag")
	}

	events := mb.GetAll()[inventory2.EnvEventTopicStatus]
	if len(events) != 1 {
		t.Fatalf("Expected one status event, got %d", len(events))
	}
	var e inventory2.StatusEvent[inventory2.VisibilityStatusEventBody]
	if err = json.Unmarshal(events[0].Value, &e); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if e.Type != inventory2.StatusEventTypeVisibility || e.Body.Visible {
		t.Fatalf("Unexpected visibility event %+v", e)
	}
}

func TestCloseDropsMirrorAndRenderState(t *testing.T) {
	characterId := uint32(24)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-24",
		Type:     "player",
		Capacity: 10,
		Items:    []inventory.SlotInput{{Index: 1, Name: "bread", Count: 1}},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}
	p.SetDisplayMetadata(characterId, []inventory.DisplayEntry{{Metadata: "mustard", Value: "Mustard"}})

	mb = message.NewBuffer()
	if err = p.Close(mb)(characterId); err != nil {
		t.Fatalf("Failed to close overlay: %v", err)
	}

	ms, err := p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to get inventories: %v", err)
	}
	if len(ms) != 0 {
		t.Fatalf("Close must drop the mirror")
	}
	if inventory.GetVisibilityRegistry().Get(te, characterId) {
		t.Fatalf("Close must drop visibility state")
	}
	if len(slot.GetDisplayRegistry().GetAll(te, characterId)) != 0 {
		t.Fatalf("Close must drop display labels")
	}

	events := mb.GetAll()[inventory2.EnvEventTopicStatus]
	if len(events) != 1 {
		t.Fatalf("Expected one status event, got %d", len(events))
	}
	var e inventory2.StatusEvent[inventory2.ClosedStatusEventBody]
	if err = json.Unmarshal(events[0].Value, &e); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if e.Type != inventory2.StatusEventTypeClosed {
		t.Fatalf("Event type [%s], want CLOSED", e.Type)
	}
}

func TestDisplayMetadataResolvesTooltipDetails(t *testing.T) {
	characterId := uint32(25)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-25",
		Type:     "player",
		Capacity: 10,
		Items: []inventory.SlotInput{{
			Index:    4,
			Name:     "burger",
			Count:    1,
			Metadata: map[string]any{"mustard": "60%", "ketchup": "30%"},
		}},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	p.SetDisplayMetadata(characterId, []inventory.DisplayEntry{
		{Metadata: "mustard", Value: "Mustard"},
	})

	m, err := p.GetById(characterId, "player-25")
	if err != nil {
		t.Fatalf("Failed to get inventory: %v", err)
	}
	s, ok := m.SlotAt(4)
	if !ok {
		t.Fatalf("Seeded slot missing")
	}
	if len(s.Details()) != 1 {
		t.Fatalf("Expected one tooltip detail, got %d", len(s.Details()))
	}
	if s.Details()[0].Label() != "Mustard" || s.Details()[0].Value() != "60%" {
		t.Fatalf("Unexpected detail %+v", s.Details()[0])
	}
}

func TestWeightAggregatesAcrossSlots(t *testing.T) {
	characterId := uint32(26)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	p := testProcessor(l, ctx, db)

	mb := message.NewBuffer()
	_, err := p.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:        "player-26",
		Type:      "player",
		Capacity:  10,
		MaxWeight: 1000,
		Items: []inventory.SlotInput{
			{Index: 1, Name: "bread", Count: 3, Weight: 10},
			{Index: 2, Name: "water", Count: 2, Weight: 25},
		},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	m, err := p.GetById(characterId, "player-26")
	if err != nil {
		t.Fatalf("Failed to get inventory: %v", err)
	}
	if m.Weight() != 80 {
		t.Fatalf("Aggregate weight [%d], want 80", m.Weight())
	}
}
