package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

func TestCompanyService_FindByCnpj(t *testing.T) {
	known := &models.Company{ID: 1, RazaoSocial: "Kazale IT", Cnpj: "51463645000100"}
	boom := errors.New("connection reset")

	tests := []struct {
		name    string
		result  *models.Company
		repoErr error
		want    *models.Company
		wantErr error
	}{
		{name: "found", result: known, want: known},
		{name: "absent is not an error", repoErr: ponto.ErrNotFound},
		{name: "storage fault", repoErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCompanyRepo{
				findByCnpj: func(context.Context, string) (*models.Company, error) {
					return tt.result, tt.repoErr
				},
			}
			svc := NewCompanyService(repo, zaptest.NewLogger(t))

			got, err := svc.FindByCnpj(context.Background(), "51463645000100")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompanyService_Persist(t *testing.T) {
	repo := &fakeCompanyRepo{
		save: func(_ context.Context, c *models.Company) error {
			c.ID = 9
			return nil
		},
	}
	svc := NewCompanyService(repo, zaptest.NewLogger(t))

	got, err := svc.Persist(context.Background(), &models.Company{RazaoSocial: "Kazale IT", Cnpj: "51463645000100"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.ID)

	repo.save = func(context.Context, *models.Company) error { return ponto.ErrConflict }
	_, err = svc.Persist(context.Background(), &models.Company{})
	assert.ErrorIs(t, err, ponto.ErrConflict)
}

func TestEmployeeService_LookupsReturnAbsent(t *testing.T) {
	notFound := func() (*models.Employee, error) { return nil, ponto.ErrNotFound }
	repo := &fakeEmployeeRepo{
		findByID:         func(context.Context, uint) (*models.Employee, error) { return notFound() },
		findByCpf:        func(context.Context, string) (*models.Employee, error) { return notFound() },
		findByEmail:      func(context.Context, string) (*models.Employee, error) { return notFound() },
		findByCpfOrEmail: func(context.Context, string, string) (*models.Employee, error) { return notFound() },
	}
	svc := NewEmployeeService(repo, zaptest.NewLogger(t))
	ctx := context.Background()

	e, err := svc.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, e)

	e, err = svc.FindByCpf(ctx, "72471428045")
	assert.NoError(t, err)
	assert.Nil(t, e)

	e, err = svc.FindByEmail(ctx, "fulano@kazale.com")
	assert.NoError(t, err)
	assert.Nil(t, e)

	e, err = svc.FindByCpfOrEmail(ctx, "72471428045", "fulano@kazale.com")
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestEmployeeService_FindByCpfOrEmail(t *testing.T) {
	employee := &models.Employee{ID: 3, Cpf: "72471428045", Email: "fulano@kazale.com"}
	var gotCpf, gotEmail string
	repo := &fakeEmployeeRepo{
		findByCpfOrEmail: func(_ context.Context, cpf, email string) (*models.Employee, error) {
			gotCpf, gotEmail = cpf, email
			return employee, nil
		},
	}
	svc := NewEmployeeService(repo, zaptest.NewLogger(t))

	got, err := svc.FindByCpfOrEmail(context.Background(), "72471428045", "fulano@kazale.com")
	require.NoError(t, err)
	assert.Equal(t, employee, got)
	assert.Equal(t, "72471428045", gotCpf)
	assert.Equal(t, "fulano@kazale.com", gotEmail)
}

func TestEmployeeService_FindPropagatesFaults(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeEmployeeRepo{
		findByEmail: func(context.Context, string) (*models.Employee, error) { return nil, boom },
	}
	svc := NewEmployeeService(repo, zaptest.NewLogger(t))

	_, err := svc.FindByEmail(context.Background(), "x@y.com")
	assert.ErrorIs(t, err, boom)
}

func TestEmployeeService_FindInCompany(t *testing.T) {
	repo := &fakeEmployeeRepo{
		findByID: func(_ context.Context, id uint) (*models.Employee, error) {
			if id != 3 {
				return nil, ponto.ErrNotFound
			}
			return &models.Employee{ID: 3, CompanyID: 10}, nil
		},
	}
	svc := NewEmployeeService(repo, zaptest.NewLogger(t))
	ctx := context.Background()

	got, err := svc.FindInCompany(ctx, 3, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.ID)

	got, err = svc.FindInCompany(ctx, 3, 11)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.FindInCompany(ctx, 4, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func newEntry(employeeID uint) *models.TimeEntry {
	return &models.TimeEntry{
		Data:       time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		Tipo:       models.InicioTrabalho,
		EmployeeID: employeeID,
	}
}

func TestTimeEntryService_PersistWritesThroughCache(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	cache := newFakeCache()
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))
	ctx := context.Background()

	saved, err := svc.Persist(ctx, newEntry(1))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	cached, err := cache.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, models.InicioTrabalho, cached.Tipo)

	// atualização substitui a mesma chave, sem servir dado antigo
	saved.Tipo = models.TerminoTrabalho
	_, err = svc.Persist(ctx, saved)
	require.NoError(t, err)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TerminoTrabalho, got.Tipo)
	assert.Zero(t, repo.finds, "lookup should be served from cache")
}

func TestTimeEntryService_FindByIDReadThrough(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	require.NoError(t, repo.Save(context.Background(), newEntry(1)))
	cache := newFakeCache()
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, repo.finds)

	second, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 1, repo.finds)

	missing, err := svc.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTimeEntryService_CacheFaultFallsBackToStore(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	require.NoError(t, repo.Save(context.Background(), newEntry(1)))
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))

	got, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestTimeEntryService_WithoutCache(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	svc := NewTimeEntryService(repo, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	saved, err := svc.Persist(ctx, newEntry(1))
	require.NoError(t, err)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, svc.Remove(ctx, saved.ID))
}

func TestTimeEntryService_FindByIDStorageFault(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	repo.findErr = errors.New("boom")
	svc := NewTimeEntryService(repo, nil, zaptest.NewLogger(t))

	_, err := svc.FindByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestTimeEntryService_RemoveEvicts(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	cache := newFakeCache()
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))
	ctx := context.Background()

	saved, err := svc.Persist(ctx, newEntry(1))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, saved.ID))
	assert.Equal(t, []uint{saved.ID}, cache.evicted)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, svc.Remove(ctx, saved.ID), ponto.ErrNotFound)
}

func TestTimeEntryService_StaleReadDoesNotOverwritePersist(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	require.NoError(t, repo.Save(context.Background(), newEntry(1)))
	cache := newFakeCache()
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))
	ctx := context.Background()

	read := make(chan struct{})
	release := make(chan struct{})
	repo.afterFind = func() {
		close(read)
		<-release
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.FindByID(ctx, 1)
		done <- err
	}()

	// a leitura já pegou o valor antigo; a gravação acontece antes do preenchimento
	<-read
	repo.afterFind = nil
	updated := newEntry(1)
	updated.ID = 1
	updated.Tipo = models.TerminoTrabalho
	_, err := svc.Persist(ctx, updated)
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	got, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.TerminoTrabalho, got.Tipo)
}

func TestTimeEntryService_StaleReadDoesNotResurrectRemoved(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	require.NoError(t, repo.Save(context.Background(), newEntry(1)))
	cache := newFakeCache()
	svc := NewTimeEntryService(repo, cache, zaptest.NewLogger(t))
	ctx := context.Background()

	read := make(chan struct{})
	release := make(chan struct{})
	repo.afterFind = func() {
		close(read)
		<-release
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.FindByID(ctx, 1)
		done <- err
	}()

	<-read
	repo.afterFind = nil
	require.NoError(t, svc.Remove(ctx, 1))

	close(release)
	require.NoError(t, <-done)

	cached, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cached)

	got, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTimeEntryService_CancelledCallerDoesNotFailSharedRead(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	require.NoError(t, repo.Save(context.Background(), newEntry(1)))
	svc := NewTimeEntryService(repo, nil, zaptest.NewLogger(t))

	read := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	repo.afterFind = func() {
		once.Do(func() { close(read) })
		<-release
	}

	first, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.FindByID(first, 1)
		firstDone <- err
	}()

	<-read
	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	// a leitura do primeiro ainda está em andamento; o segundo entra nela
	secondDone := make(chan *models.TimeEntry, 1)
	go func() {
		got, err := svc.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		secondDone <- got
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-secondDone
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestTimeEntryService_ListAndPage(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	svc := NewTimeEntryService(repo, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Persist(ctx, newEntry(1))
	require.NoError(t, err)
	_, err = svc.Persist(ctx, newEntry(1))
	require.NoError(t, err)
	_, err = svc.Persist(ctx, newEntry(2))
	require.NoError(t, err)

	list, err := svc.ListByEmployeeID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	page, err := svc.PageByEmployeeID(ctx, 1, ponto.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)

	_, err = svc.PageByEmployeeID(ctx, 1, ponto.PageRequest{Page: 0, Size: 0})
	assert.Error(t, err)
}
