package service

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

type fakeCompanyRepo struct {
	findByCnpj func(context.Context, string) (*models.Company, error)
	save       func(context.Context, *models.Company) error
}

func (f *fakeCompanyRepo) FindByCnpj(ctx context.Context, cnpj string) (*models.Company, error) {
	return f.findByCnpj(ctx, cnpj)
}

func (f *fakeCompanyRepo) Save(ctx context.Context, c *models.Company) error {
	return f.save(ctx, c)
}

func (f *fakeCompanyRepo) Delete(context.Context, uint) error {
	return nil
}

type fakeEmployeeRepo struct {
	findByID         func(context.Context, uint) (*models.Employee, error)
	findByCpf        func(context.Context, string) (*models.Employee, error)
	findByEmail      func(context.Context, string) (*models.Employee, error)
	findByCpfOrEmail func(context.Context, string, string) (*models.Employee, error)
	save             func(context.Context, *models.Employee) error
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	return f.findByID(ctx, id)
}

func (f *fakeEmployeeRepo) FindByCpf(ctx context.Context, cpf string) (*models.Employee, error) {
	return f.findByCpf(ctx, cpf)
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeEmployeeRepo) FindByCpfOrEmail(ctx context.Context, cpf, email string) (*models.Employee, error) {
	return f.findByCpfOrEmail(ctx, cpf, email)
}

func (f *fakeEmployeeRepo) Save(ctx context.Context, e *models.Employee) error {
	return f.save(ctx, e)
}

type fakeTimeEntryRepo struct {
	mu      sync.Mutex
	entries map[uint]models.TimeEntry
	nextID  uint
	finds   int
	findErr error
	// afterFind roda depois da leitura, fora do lock
	afterFind func()
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: map[uint]models.TimeEntry{}, nextID: 1}
}

func (f *fakeTimeEntryRepo) FindByID(ctx context.Context, id uint) (*models.TimeEntry, error) {
	f.mu.Lock()
	f.finds++
	findErr := f.findErr
	e, ok := f.entries[id]
	hook := f.afterFind
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if findErr != nil {
		return nil, findErr
	}
	if !ok {
		return nil, ponto.ErrNotFound
	}
	return &e, nil
}

func (f *fakeTimeEntryRepo) ListByEmployeeID(_ context.Context, employeeID uint) ([]models.TimeEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.TimeEntry{}
	for id := uint(1); id < f.nextID; id++ {
		if e, ok := f.entries[id]; ok && e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) PageByEmployeeID(ctx context.Context, employeeID uint, req ponto.PageRequest) (ponto.Page[models.TimeEntry], error) {
	all, _ := f.ListByEmployeeID(ctx, employeeID)
	page := ponto.Page[models.TimeEntry]{Content: []models.TimeEntry{}, TotalElements: int64(len(all)), Number: req.Page, Size: req.Size}
	for i := req.Offset(); i < len(all) && i < req.Offset()+req.Size; i++ {
		page.Content = append(page.Content, all[i])
	}
	return page, nil
}

func (f *fakeTimeEntryRepo) Save(_ context.Context, e *models.TimeEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == 0 {
		e.ID = f.nextID
		f.nextID++
	}
	f.entries[e.ID] = *e
	return nil
}

func (f *fakeTimeEntryRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return ponto.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[uint]models.TimeEntry
	removed map[uint]bool
	getErr  error
	setErr  error
	evicted []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uint]models.TimeEntry{}, removed: map[uint]bool{}}
}

func (c *fakeCache) Get(_ context.Context, id uint) (*models.TimeEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	e, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (c *fakeCache) Set(_ context.Context, e *models.TimeEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	delete(c.removed, e.ID)
	c.entries[e.ID] = *e
	return nil
}

func (c *fakeCache) Add(_ context.Context, e *models.TimeEntry) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return false, c.setErr
	}
	if _, ok := c.entries[e.ID]; ok || c.removed[e.ID] {
		return false, nil
	}
	c.entries[e.ID] = *e
	return true, nil
}

func (c *fakeCache) Evict(_ context.Context, id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.removed[id] = true
	c.evicted = append(c.evicted, id)
	return nil
}
