package consumption_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/costeo-api/internal/application/consumption"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// store base de datos en memoria para los puertos del costeo.
type store struct {
	items     []entity.InventoryItem
	txItems   []entity.InventoryTransactionItem
	recipes   []entity.Recipe
	orders    []entity.Order
	menu      map[string]*entity.MenuItem
	periods   []*entity.WorkPeriod
	records   map[string]*entity.PeriodicConsumption
	creates   int
	updates   int
	ordersErr error
}

func newStore() *store {
	return &store{menu: map[string]*entity.MenuItem{}, records: map[string]*entity.PeriodicConsumption{}}
}

func (s *store) repos() consumption.Repositories {
	return consumption.Repositories{
		InventoryItems: itemRepo{s},
		Transactions:   txRepo{s},
		Recipes:        recipeRepo{s},
		Orders:         orderRepo{s},
		Consumptions:   consumptionRepo{s},
		WorkPeriods:    periodRepo{s},
		Menu:           menuRepo{s},
	}
}

func (s *store) record(workPeriodID string) *entity.PeriodicConsumption {
	return clonePC(s.records[workPeriodID])
}

func clonePC(pc *entity.PeriodicConsumption) *entity.PeriodicConsumption {
	if pc == nil {
		return nil
	}
	cp := *pc
	cp.Items = append([]entity.PeriodicConsumptionItem(nil), pc.Items...)
	cp.CostItems = append([]entity.CostItem(nil), pc.CostItems...)
	return &cp
}

// fakeTx restaura los registros de consumo si fn falla.
type fakeTx struct{ s *store }

func (t fakeTx) Run(_ context.Context, fn func(consumption.Repositories) error) error {
	snapshot := make(map[string]*entity.PeriodicConsumption, len(t.s.records))
	for k, v := range t.s.records {
		snapshot[k] = clonePC(v)
	}
	if err := fn(t.s.repos()); err != nil {
		t.s.records = snapshot
		return err
	}
	return nil
}

type itemRepo struct{ s *store }

func (r itemRepo) ListAll(context.Context) ([]entity.InventoryItem, error) {
	return append([]entity.InventoryItem(nil), r.s.items...), nil
}

func (r itemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	for i := range r.s.items {
		if r.s.items[i].ID == id {
			it := r.s.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (r itemRepo) Delete(_ context.Context, id string) error {
	for i := range r.s.items {
		if r.s.items[i].ID == id {
			r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r itemRepo) ListDistinctNames(context.Context) ([]string, error) {
	var out []string
	for _, it := range r.s.items {
		out = append(out, it.Name)
	}
	return out, nil
}

func (r itemRepo) ListDistinctGroupCodes(context.Context) ([]string, error) {
	var out []string
	for _, it := range r.s.items {
		out = append(out, it.GroupCode)
	}
	return out, nil
}

func inWindow(d, start, end time.Time) bool {
	return d.After(start) && (end.IsZero() || !d.After(end))
}

type txRepo struct{ s *store }

func (r txRepo) ListItemsSince(_ context.Context, start, end time.Time) ([]entity.InventoryTransactionItem, error) {
	var out []entity.InventoryTransactionItem
	for _, ti := range r.s.txItems {
		if inWindow(ti.Date, start, end) {
			out = append(out, ti)
		}
	}
	return out, nil
}

type recipeRepo struct{ s *store }

func (r recipeRepo) ListAll(context.Context) ([]entity.Recipe, error) {
	return append([]entity.Recipe(nil), r.s.recipes...), nil
}

func (r recipeRepo) Count(context.Context) (int, error) { return len(r.s.recipes), nil }

func (r recipeRepo) GetByPortion(_ context.Context, portionID string) (*entity.Recipe, error) {
	for i := range r.s.recipes {
		if p := r.s.recipes[i].Portion; p != nil && p.ID == portionID {
			rec := r.s.recipes[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (r recipeRepo) Save(_ context.Context, recipe *entity.Recipe) error {
	r.s.recipes = append(r.s.recipes, *recipe)
	return nil
}

type orderRepo struct{ s *store }

func (r orderRepo) ListSoldWithRecipes(_ context.Context, start, end time.Time) ([]entity.Order, error) {
	if r.s.ordersErr != nil {
		return nil, r.s.ordersErr
	}
	var out []entity.Order
	for _, o := range r.s.orders {
		if inWindow(o.Date, start, end) {
			out = append(out, o)
		}
	}
	return out, nil
}

type consumptionRepo struct{ s *store }

func (r consumptionRepo) GetByWorkPeriod(_ context.Context, workPeriodID string) (*entity.PeriodicConsumption, error) {
	return r.s.record(workPeriodID), nil
}

func (r consumptionRepo) Create(_ context.Context, pc *entity.PeriodicConsumption) error {
	if _, ok := r.s.records[pc.WorkPeriodID]; ok {
		return domain.ErrDuplicate
	}
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	r.s.records[pc.WorkPeriodID] = clonePC(pc)
	r.s.creates++
	return nil
}

func (r consumptionRepo) Update(_ context.Context, pc *entity.PeriodicConsumption) error {
	if _, ok := r.s.records[pc.WorkPeriodID]; !ok {
		return domain.ErrNotFound
	}
	r.s.records[pc.WorkPeriodID] = clonePC(pc)
	r.s.updates++
	return nil
}

func (r consumptionRepo) ExistsForInventoryItem(_ context.Context, inventoryItemID string) (bool, error) {
	for _, pc := range r.s.records {
		if pc.Item(inventoryItemID) != nil {
			return true, nil
		}
	}
	return false, nil
}

type periodRepo struct{ s *store }

func (r periodRepo) Current(context.Context) (*entity.WorkPeriod, error) {
	if len(r.s.periods) == 0 {
		return nil, nil
	}
	p := *r.s.periods[len(r.s.periods)-1]
	return &p, nil
}

func (r periodRepo) Previous(_ context.Context, period *entity.WorkPeriod) (*entity.WorkPeriod, error) {
	var prev *entity.WorkPeriod
	for _, p := range r.s.periods {
		if p.StartDate.Before(period.StartDate) && (prev == nil || p.StartDate.After(prev.StartDate)) {
			prev = p
		}
	}
	if prev == nil {
		return nil, nil
	}
	cp := *prev
	return &cp, nil
}

func (r periodRepo) Create(_ context.Context, period *entity.WorkPeriod) error {
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	cp := *period
	r.s.periods = append(r.s.periods, &cp)
	return nil
}

func (r periodRepo) Close(_ context.Context, id string, endDate time.Time, description string) error {
	for _, p := range r.s.periods {
		if p.ID == id {
			p.EndDate = endDate
			p.EndDescription = description
			return nil
		}
	}
	return domain.ErrNotFound
}

type menuRepo struct{ s *store }

func (r menuRepo) GetMenuItem(_ context.Context, id string) (*entity.MenuItem, error) {
	return r.s.menu[id], nil
}

// fakeReports generador de reportes que devuelve bytes fijos.
type fakeReports struct {
	got *entity.PeriodicConsumption
	err error
}

func (f *fakeReports) GenerateConsumptionReport(_ context.Context, pc *entity.PeriodicConsumption) ([]byte, error) {
	f.got = pc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

var errDB = errors.New("conexión perdida")

// ── Escenario hamburguesa ─────────────────────────────────────────────────────

var (
	day1Start = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	day1End   = time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	day2Start = time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	day2End   = time.Date(2026, 3, 3, 23, 0, 0, 0, time.UTC)

	bun  = entity.InventoryItem{ID: "inv-bun", Name: "Pan", GroupCode: "Panadería", BaseUnit: "und"}
	beef = entity.InventoryItem{ID: "inv-beef", Name: "Carne", GroupCode: "Cárnicos", BaseUnit: "kg"}

	burgerRegular = entity.MenuItemPortion{ID: "por-burger-reg", MenuItemID: "mi-burger", Name: "Regular"}
	extraBeefNorm = entity.MenuItemPortion{ID: "por-extra-norm", MenuItemID: "mi-extra-beef", Name: "Normal"}
)

// burgerStore período 1 cerrado con compras y ventas: 5 hamburguesas, 2 de ellas con carne extra.
func burgerStore() *store {
	s := newStore()
	s.items = []entity.InventoryItem{bun, beef}
	b, m := bun, beef
	s.recipes = []entity.Recipe{
		{
			ID: "rec-burger", Name: "Hamburguesa Regular", Portion: &burgerRegular, FixedCost: dec("0.10"),
			Items: []entity.RecipeItem{{InventoryItem: &b, Quantity: dec("1")}, {InventoryItem: &m, Quantity: dec("0.2")}},
		},
		{
			ID: "rec-extra", Name: "Carne Extra", Portion: &extraBeefNorm, FixedCost: decimal.Zero,
			Items: []entity.RecipeItem{{InventoryItem: &m, Quantity: dec("0.2")}},
		},
	}
	s.menu["mi-burger"] = &entity.MenuItem{ID: "mi-burger", Name: "Hamburguesa", Portions: []entity.MenuItemPortion{burgerRegular}}
	s.menu["mi-extra-beef"] = &entity.MenuItem{ID: "mi-extra-beef", Name: "Carne Extra", Portions: []entity.MenuItemPortion{extraBeefNorm}}
	s.periods = []*entity.WorkPeriod{{ID: "wp-1", StartDate: day1Start, EndDate: day1End}}
	s.txItems = []entity.InventoryTransactionItem{
		{InventoryItemID: bun.ID, Date: day1Start.Add(time.Hour), Quantity: dec("100"), Multiplier: dec("1"), Price: dec("0.50")},
		{InventoryItemID: beef.ID, Date: day1Start.Add(time.Hour), Quantity: dec("10"), Multiplier: dec("1"), Price: dec("8.00")},
	}
	s.orders = []entity.Order{
		{MenuItemID: "mi-burger", MenuItemName: "Hamburguesa", PortionName: "Regular", Quantity: dec("3"), DecreaseInventory: true, Date: day1Start.Add(2 * time.Hour)},
		{
			MenuItemID: "mi-burger", MenuItemName: "Hamburguesa", PortionName: "Regular", Quantity: dec("2"), DecreaseInventory: true, Date: day1Start.Add(3 * time.Hour),
			TagValues: []entity.OrderTagValue{{Name: "+Carne", MenuItemID: "mi-extra-beef", PortionName: "Normal", Quantity: dec("1")}},
		},
	}
	return s
}

// startDay2 abre el período 2 con una compra de carne a 10.00.
func (s *store) startDay2(closed bool) {
	p := &entity.WorkPeriod{ID: "wp-2", StartDate: day2Start}
	if closed {
		p.EndDate = day2End
	}
	s.periods = append(s.periods, p)
	s.txItems = append(s.txItems, entity.InventoryTransactionItem{
		InventoryItemID: beef.ID, Date: day2Start.Add(time.Hour), Quantity: dec("10"), Multiplier: dec("1"), Price: dec("10.00"),
	})
}
