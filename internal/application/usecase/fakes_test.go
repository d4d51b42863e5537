package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/costeo-api/internal/application/consumption"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var errDB = errors.New("conexión perdida")

type fakeItems struct {
	items   map[string]*entity.InventoryItem
	names   []string
	groups  []string
	deleted []string
	err     error
}

func (f *fakeItems) ListAll(context.Context) ([]entity.InventoryItem, error) {
	out := make([]entity.InventoryItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, f.err
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}

func (f *fakeItems) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return nil
}

func (f *fakeItems) ListDistinctNames(context.Context) ([]string, error) { return f.names, f.err }

func (f *fakeItems) ListDistinctGroupCodes(context.Context) ([]string, error) { return f.groups, f.err }

type fakeConsumptions struct {
	inUse map[string]bool
}

func (f *fakeConsumptions) GetByWorkPeriod(context.Context, string) (*entity.PeriodicConsumption, error) {
	return nil, nil
}

func (f *fakeConsumptions) Create(context.Context, *entity.PeriodicConsumption) error { return nil }

func (f *fakeConsumptions) Update(context.Context, *entity.PeriodicConsumption) error { return nil }

func (f *fakeConsumptions) ExistsForInventoryItem(_ context.Context, id string) (bool, error) {
	return f.inUse[id], nil
}

type fakeRecipes struct {
	byPortion map[string]*entity.Recipe
	saved     []*entity.Recipe
}

func (f *fakeRecipes) ListAll(context.Context) ([]entity.Recipe, error) { return nil, nil }

func (f *fakeRecipes) Count(context.Context) (int, error) { return len(f.byPortion), nil }

func (f *fakeRecipes) GetByPortion(_ context.Context, portionID string) (*entity.Recipe, error) {
	return f.byPortion[portionID], nil
}

func (f *fakeRecipes) Save(_ context.Context, r *entity.Recipe) error {
	f.saved = append(f.saved, r)
	f.byPortion[r.Portion.ID] = r
	return nil
}

type fakeMenu map[string]*entity.MenuItem

func (f fakeMenu) GetMenuItem(_ context.Context, id string) (*entity.MenuItem, error) {
	return f[id], nil
}

type fakePeriods struct {
	periods []*entity.WorkPeriod
	closed  map[string]string
}

func (f *fakePeriods) Current(context.Context) (*entity.WorkPeriod, error) {
	if len(f.periods) == 0 {
		return nil, nil
	}
	p := *f.periods[len(f.periods)-1]
	return &p, nil
}

func (f *fakePeriods) Previous(context.Context, *entity.WorkPeriod) (*entity.WorkPeriod, error) {
	return nil, nil
}

func (f *fakePeriods) Create(_ context.Context, p *entity.WorkPeriod) error {
	cp := *p
	f.periods = append(f.periods, &cp)
	return nil
}

func (f *fakePeriods) Close(_ context.Context, id string, end time.Time, description string) error {
	for _, p := range f.periods {
		if p.ID == id {
			p.EndDate = end
			p.EndDescription = description
		}
	}
	return nil
}

type recordingPublisher struct {
	events []consumption.PeriodStatusChanged
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, ev consumption.PeriodStatusChanged) error {
	r.events = append(r.events, ev)
	return r.err
}
