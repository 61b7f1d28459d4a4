package transfer_test

import (
	"atlas-overlay/catalog"
	catalogMock "atlas-overlay/catalog/mock"
	"atlas-overlay/inventory"
	"atlas-overlay/kafka/message"
	"atlas-overlay/kafka/message/bridge"
	"atlas-overlay/slot"
	"atlas-overlay/transfer"
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

func testInventoryProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *inventory.Processor {
	cp := &catalogMock.ProcessorImpl{
		GetByNameFn: func(name string) (catalog.Model, error) {
			return catalog.Model{}, errors.New("not found")
		},
	}
	sp := slot.NewProcessor(l, ctx, db).WithCatalogProcessor(cp)
	return inventory.NewProcessor(l, ctx, db).WithSlotProcessor(sp)
}

func TestClassify(t *testing.T) {
	cases := map[inventory.Type]transfer.Kind{
		inventory.TypePlayer:    transfer.KindMove,
		inventory.TypeShop:      transfer.KindPurchase,
		inventory.TypeCrafting:  transfer.KindCraft,
		inventory.TypeContainer: transfer.KindMove,
		inventory.TypeGlovebox:  transfer.KindMove,
		inventory.TypeTrunk:     transfer.KindMove,
		inventory.TypeGround:    transfer.KindMove,
		inventory.TypeHotbar:    transfer.KindMove,
	}
	for it, want := range cases {
		if got := transfer.Classify(it); got != want {
			t.Fatalf("Classify(%s) = %s, want %s", it, got, want)
		}
	}
}

func TestDispatchShapesMoveRequest(t *testing.T) {
	characterId := uint32(10)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db)

	kind, err := p.Dispatch(mb)(characterId, transfer.NewEndpoint(inventory.TypePlayer, 3), transfer.NewEndpoint(inventory.TypeGlovebox, 2))
	if err != nil {
		t.Fatalf("Failed to dispatch: %v", err)
	}
	if kind != transfer.KindMove {
		t.Fatalf("Dispatch resolved [%s], want MOVE", kind)
	}

	ms := mb.GetAll()[bridge.EnvCommandTopic]
	if len(ms) != 1 {
		t.Fatalf("Expected one request, got %d", len(ms))
	}
	var req bridge.Request[bridge.MoveRequestBody]
	if err = json.Unmarshal(ms[0].Value, &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if req.Type != bridge.RequestTypeMove {
		t.Fatalf("Request type [%s], want MOVE", req.Type)
	}
	if req.CharacterId != characterId {
		t.Fatalf("Request character [%d], want [%d]", req.CharacterId, characterId)
	}
	if req.TransactionId == uuid.Nil {
		t.Fatalf("Request must carry a transaction id")
	}
	if req.Body.Source.Inventory != "player" || req.Body.Source.Item.Slot != 3 {
		t.Fatalf("Unexpected source endpoint %+v", req.Body.Source)
	}
	if req.Body.Target.Inventory != "glovebox" || req.Body.Target.Item.Slot != 2 {
		t.Fatalf("Unexpected target endpoint %+v", req.Body.Target)
	}
}

func TestDispatchShapesPurchaseRequest(t *testing.T) {
	characterId := uint32(11)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db)

	kind, err := p.Dispatch(mb)(characterId, transfer.NewEndpoint(inventory.TypeShop, 1), transfer.NewEndpoint(inventory.TypePlayer, 5))
	if err != nil {
		t.Fatalf("Failed to dispatch: %v", err)
	}
	if kind != transfer.KindPurchase {
		t.Fatalf("Dispatch resolved [%s], want PURCHASE", kind)
	}

	ms := mb.GetAll()[bridge.EnvCommandTopic]
	if len(ms) != 1 {
		t.Fatalf("Expected one request, got %d", len(ms))
	}
	var req bridge.Request[bridge.PurchaseRequestBody]
	if err = json.Unmarshal(ms[0].Value, &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if req.Type != bridge.RequestTypePurchase {
		t.Fatalf("Request type [%s], want PURCHASE", req.Type)
	}
	if req.Body.Source.Inventory != "shop" {
		t.Fatalf("Unexpected source endpoint %+v", req.Body.Source)
	}
}

func TestDispatchShapesCraftRequest(t *testing.T) {
	characterId := uint32(12)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db)

	kind, err := p.Dispatch(mb)(characterId, transfer.NewEndpoint(inventory.TypeCrafting, 2), transfer.NewEndpoint(inventory.TypePlayer, 7))
	if err != nil {
		t.Fatalf("Failed to dispatch: %v", err)
	}
	if kind != transfer.KindCraft {
		t.Fatalf("Dispatch resolved [%s], want CRAFT", kind)
	}

	ms := mb.GetAll()[bridge.EnvCommandTopic]
	if len(ms) != 1 {
		t.Fatalf("Expected one request, got %d", len(ms))
	}
	var req bridge.Request[bridge.CraftRequestBody]
	if err = json.Unmarshal(ms[0].Value, &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if req.Type != bridge.RequestTypeCraft {
		t.Fatalf("Request type [%s], want CRAFT", req.Type)
	}
}

func TestQuickDropRoutesMoveToGround(t *testing.T) {
	characterId := uint32(13)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	ip := testInventoryProcessor(l, ctx, db)
	_, err := ip.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-13",
		Type:     "player",
		Capacity: 10,
		Items:    []inventory.SlotInput{{Index: 2, Name: "bread", Count: 3}},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	mb = message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db).WithInventoryProcessor(ip)
	err = p.QuickDrop(mb)(characterId, "player-13", 2)
	if err != nil {
		t.Fatalf("Failed to quick drop: %v", err)
	}

	ms := mb.GetAll()[bridge.EnvCommandTopic]
	if len(ms) != 1 {
		t.Fatalf("Expected one request, got %d", len(ms))
	}
	var req bridge.Request[bridge.MoveRequestBody]
	if err = json.Unmarshal(ms[0].Value, &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if req.Type != bridge.RequestTypeMove {
		t.Fatalf("Request type [%s], want MOVE", req.Type)
	}
	if req.Body.Target.Inventory != "ground" || req.Body.Target.Item.Slot != 0 {
		t.Fatalf("Quick drop must target the ground placeholder, got %+v", req.Body.Target)
	}
}

func TestQuickDropIgnoresEmptySlot(t *testing.T) {
	characterId := uint32(14)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	ip := testInventoryProcessor(l, ctx, db)
	_, err := ip.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-14",
		Type:     "player",
		Capacity: 10,
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	mb = message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db).WithInventoryProcessor(ip)
	err = p.QuickDrop(mb)(characterId, "player-14", 4)
	if err == nil {
		t.Fatalf("Quick drop from an empty slot must be rejected")
	}
	if len(mb.GetAll()[bridge.EnvCommandTopic]) != 0 {
		t.Fatalf("Rejected quick drop must not route a request")
	}
}

func TestQuickDropIgnoresNonPlayerInventories(t *testing.T) {
	characterId := uint32(15)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	ip := testInventoryProcessor(l, ctx, db)
	_, err := ip.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-15",
		Type:     "player",
		Capacity: 10,
	}, &inventory.SnapshotInput{
		Id:       "shop-15",
		Type:     "shop",
		Capacity: 5,
		Items:    []inventory.SlotInput{{Index: 1, Name: "bread", Count: 5, Price: 2}},
	})
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	mb = message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db).WithInventoryProcessor(ip)
	err = p.QuickDrop(mb)(characterId, "shop-15", 1)
	if err == nil {
		t.Fatalf("Quick drop from a shop must be rejected")
	}
	if len(mb.GetAll()[bridge.EnvCommandTopic]) != 0 {
		t.Fatalf("Rejected quick drop must not route a request")
	}
}

func TestQuickUseRoutesUseRequest(t *testing.T) {
	characterId := uint32(16)

	l := testLogger()
	te := testTenant()
	ctx := tenant.WithContext(context.Background(), te)
	db := testDatabase(t)

	mb := message.NewBuffer()
	ip := testInventoryProcessor(l, ctx, db)
	_, err := ip.Setup(mb)(characterId, &inventory.SnapshotInput{
		Id:       "player-16",
		Type:     "player",
		Capacity: 10,
		Items:    []inventory.SlotInput{{Index: 6, Name: "bandage", Count: 1}},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to set up mirror: %v", err)
	}

	mb = message.NewBuffer()
	p := transfer.NewProcessor(l, ctx, db).WithInventoryProcessor(ip)
	err = p.QuickUse(mb)(characterId, "player-16", 6)
	if err != nil {
		t.Fatalf("Failed to quick use: %v", err)
	}

	ms := mb.GetAll()[bridge.EnvCommandTopic]
	if len(ms) != 1 {
		t.Fatalf("Expected one request, got %d", len(ms))
	}
	var req bridge.Request[bridge.UseRequestBody]
	if err = json.Unmarshal(ms[0].Value, &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if req.Type != bridge.RequestTypeUse {
		t.Fatalf("Request type [%s], want USE", req.Type)
	}
	if req.Body.Item.Slot != 6 {
		t.Fatalf("Use request slot [%d], want 6", req.Body.Item.Slot)
	}
}
