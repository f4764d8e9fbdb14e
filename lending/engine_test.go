package lending

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/store"

	"github.com/stretchr/testify/require"
)

const testNS = store.Namespace("t")

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// flakyStore fails every write while failing is set.
type flakyStore struct {
	*store.MemoryStore
	failing atomic.Bool
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failing.Load() {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type countingRecorder struct {
	created, lines, returned, deleted, saves int
	codes                                    []string
}

func (r *countingRecorder) BorrowCreated(lines int)      { r.created++; r.lines += lines }
func (r *countingRecorder) ItemsReturned(units int)      { r.returned += units }
func (r *countingRecorder) BorrowDeleted()               { r.deleted++ }
func (r *countingRecorder) ValidationFailed(code string) { r.codes = append(r.codes, code) }
func (r *countingRecorder) StoreSaved(time.Duration)     { r.saves++ }

type fixture struct {
	st  *flakyStore
	e   *Engine
	rec *countingRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := &flakyStore{MemoryStore: store.NewMemoryStore()}
	repo, err := db.NewRepo(context.Background(), st, db.Options{Namespace: testNS})
	require.NoError(t, err)
	repo.Users.Replace([]models.User{
		{ID: "u1", FullName: "Ann Lee", StudentID: "S1", Phone: "0811"},
		{ID: "u2", FullName: "Bob Chan", StudentID: "S2", Phone: "0822"},
	})
	repo.Equipment.Replace([]models.Equipment{
		{ID: "e1", Name: "Router", Category: "Network", Quantity: 5, Status: models.EquipmentAvailable},
		{ID: "e2", Name: "Switch", Category: "Network", Quantity: 8, Status: models.EquipmentAvailable},
		{ID: "e3", Name: "Notebook", Category: "IT", Quantity: 3, Status: models.EquipmentMaintenance},
	})
	require.NoError(t, repo.Users.Save(context.Background()))
	require.NoError(t, repo.Equipment.Save(context.Background()))

	var seq atomic.Int64
	rec := &countingRecorder{}
	e := NewEngine(repo,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
		WithRecorder(rec),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return &fixture{st: st, e: e, rec: rec}
}

func (f *fixture) quantity(t *testing.T, id string) int {
	t.Helper()
	eq, ok := f.e.repo.Equipment.Get(id)
	require.True(t, ok, "equipment %s", id)
	return eq.Quantity
}

func (f *fixture) borrow(t *testing.T, items ...CartLine) models.Borrow {
	t.Helper()
	b, err := f.e.CreateBorrow(context.Background(), BorrowRequest{
		UserID: "u1", BorrowDate: "2025-03-10", DueDate: "2025-03-12", Items: items,
	})
	require.NoError(t, err)
	return b
}

// reload reads the collections back from the store the way a restart would.
func (f *fixture) reload(t *testing.T) *db.Repo {
	t.Helper()
	repo, err := db.NewRepo(context.Background(), f.st, db.Options{Namespace: testNS})
	require.NoError(t, err)
	return repo
}

func validationCode(t *testing.T, err error) string {
	t.Helper()
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Code
}
