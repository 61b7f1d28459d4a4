package gate

import (
	"atlas-overlay/inventory"
	"atlas-overlay/slot"
)

// DefaultCurrency names the stack counted as funds when a shop slot does not
// declare its own currency.
const DefaultCurrency = "money"

// Context carries the viewer-local facts predicates may consult. Lookups
// close over state captured before evaluation, so a predicate never touches
// storage and stays cheap enough to run on every pointer move.
type Context struct {
	PlayerGroups map[string]byte
	FundsOf      func(currency string) uint32
	CountOf      func(name string) uint32
}

type PurchasePredicate func(s slot.Model, ctx Context) bool

type CraftPredicate func(s slot.Model, ctx Context) bool

type Evaluator struct {
	canPurchase PurchasePredicate
	canCraft    CraftPredicate
}

type Configurator func(e *Evaluator)

func SetPurchasePredicate(f PurchasePredicate) Configurator {
	return func(e *Evaluator) {
		e.canPurchase = f
	}
}

func SetCraftPredicate(f CraftPredicate) Configurator {
	return func(e *Evaluator) {
		e.canCraft = f
	}
}

func NewEvaluator(configurators ...Configurator) *Evaluator {
	e := &Evaluator{
		canPurchase: DefaultPurchasePredicate,
		canCraft:    DefaultCraftPredicate,
	}
	for _, configurator := range configurators {
		configurator(e)
	}
	return e
}

// DefaultPurchasePredicate requires remaining stock and enough funds to take
// the offered stack. Verdicts are advisory. The authoritative check happens
// server side once the purchase request lands.
func DefaultPurchasePredicate(s slot.Model, ctx Context) bool {
	if s.Count() == 0 {
		return false
	}
	if s.Price() == 0 {
		return true
	}
	if ctx.FundsOf == nil {
		return false
	}
	currency := s.Currency()
	if currency == "" {
		currency = DefaultCurrency
	}
	return ctx.FundsOf(currency) >= s.Price()*s.Count()
}

// DefaultCraftPredicate requires every advertised ingredient to be held in
// sufficient quantity. A recipe without ingredient metadata is craftable.
func DefaultCraftPredicate(s slot.Model, ctx Context) bool {
	for name, qty := range s.Metadata().Ingredients() {
		if ctx.CountOf == nil {
			return false
		}
		if ctx.CountOf(name) < qty {
			return false
		}
	}
	return true
}

func groupsSatisfied(required map[string]byte, held map[string]byte) bool {
	for group, rank := range required {
		h, ok := held[group]
		if !ok || h < rank {
			return false
		}
	}
	return true
}

// CanOriginateDrag decides whether a gesture may pick up the given slot.
func (e *Evaluator) CanOriginateDrag(inv inventory.Model, s slot.Model, ctx Context) bool {
	if !s.Occupied() {
		return false
	}
	if !groupsSatisfied(inv.Groups(), ctx.PlayerGroups) {
		return false
	}
	switch inv.Type() {
	case inventory.TypeShop:
		return e.canPurchase(s, ctx)
	case inventory.TypeCrafting:
		return e.canCraft(s, ctx)
	case inventory.TypePlayer, inventory.TypeContainer, inventory.TypeGlovebox, inventory.TypeTrunk, inventory.TypeGround, inventory.TypeHotbar:
		return true
	}
	return false
}

// CanAcceptDrop decides whether a held item may be released onto the given
// target cell. Shops and crafting benches only ever act as sources, and a
// drop onto the origin cell is a no-op rather than a transfer.
func (e *Evaluator) CanAcceptDrop(sourceInventoryId string, sourceSlot uint32, target inventory.Model, targetSlot uint32) bool {
	if sourceInventoryId == target.Id() && sourceSlot == targetSlot {
		return false
	}
	switch target.Type() {
	case inventory.TypeShop, inventory.TypeCrafting:
		return false
	case inventory.TypePlayer, inventory.TypeContainer, inventory.TypeGlovebox, inventory.TypeTrunk, inventory.TypeGround, inventory.TypeHotbar:
		return targetSlot >= 1 && targetSlot <= target.Capacity()
	}
	return false
}
