package db

import (
	"context"
	"errors"
	"testing"

	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns = store.Namespace("test")

type brokenStore struct{ *store.MemoryStore }

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestNewRepo_SeedsMissingCollections(t *testing.T) {
	repo, err := NewRepo(context.Background(), store.NewMemoryStore(), Options{Namespace: ns, SeedOnEmpty: true})
	require.NoError(t, err)
	assert.Equal(t, 4, repo.Users.Len())
	assert.Equal(t, 4, repo.Equipment.Len())
	assert.Zero(t, repo.Borrows.Len())
}

func TestNewRepo_WithoutSeedStartsEmpty(t *testing.T) {
	repo, err := NewRepo(context.Background(), store.NewMemoryStore(), Options{Namespace: ns})
	require.NoError(t, err)
	assert.Zero(t, repo.Users.Len())
	assert.NotNil(t, repo.Users.ListAll())
	assert.Zero(t, repo.Equipment.Len())
}

func TestNewRepo_KeepsStoredEmptyList(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, ns.Key(models.UsersKey), []byte("[]")))

	repo, err := NewRepo(ctx, st, Options{Namespace: ns, SeedOnEmpty: true})
	require.NoError(t, err)
	assert.Zero(t, repo.Users.Len())
	assert.Equal(t, 4, repo.Equipment.Len())
}

func TestNewRepo_CorruptDocumentFallsBack(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, ns.Key(models.BorrowsKey), []byte(`{"oops":`)))
	require.NoError(t, st.Set(ctx, ns.Key(models.EquipmentKey), []byte(`"not a list"`)))

	repo, err := NewRepo(ctx, st, Options{Namespace: ns, SeedOnEmpty: true})
	require.NoError(t, err)
	assert.Zero(t, repo.Borrows.Len())
	assert.Equal(t, 4, repo.Equipment.Len())
}

func TestNewRepo_StoreErrorIsReturned(t *testing.T) {
	_, err := NewRepo(context.Background(), brokenStore{store.NewMemoryStore()}, Options{Namespace: ns})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCollection_UpsertRemoveSave(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	users, err := LoadUsers(ctx, st, ns, false)
	require.NoError(t, err)

	users.Upsert(models.User{ID: "u1", FullName: "Ann"})
	users.Upsert(models.User{ID: "u2", FullName: "Bob"})
	all := users.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "u2", all[0].ID, "new rows go first")

	users.Upsert(models.User{ID: "u1", FullName: "Ann Lee"})
	all = users.ListAll()
	assert.Equal(t, "Ann Lee", all[1].FullName, "updates keep position")

	// ListAll hands out a copy
	all[0].FullName = "changed"
	u, ok := users.Get("u2")
	require.True(t, ok)
	assert.Equal(t, "Bob", u.FullName)

	assert.True(t, users.RemoveByID("u2"))
	assert.False(t, users.RemoveByID("u2"))

	// nothing persisted until Save
	_, err = st.Get(ctx, ns.Key(models.UsersKey))
	require.ErrorIs(t, err, store.ErrNotExist)

	require.NoError(t, users.Save(ctx))
	reloaded, err := LoadUsers(ctx, st, ns, true)
	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: "u1", FullName: "Ann Lee"}}, reloaded.ListAll())
}

func TestUserRepo_StudentIDTaken(t *testing.T) {
	users, err := LoadUsers(context.Background(), store.NewMemoryStore(), ns, false)
	require.NoError(t, err)
	users.Upsert(models.User{ID: "u1", StudentID: "S1"})
	assert.True(t, users.StudentIDTaken("S1", ""))
	assert.False(t, users.StudentIDTaken("S1", "u1"))
	assert.False(t, users.StudentIDTaken("S2", ""))
}

func TestEquipmentRepo_AdjustQuantity(t *testing.T) {
	eq, err := LoadEquipment(context.Background(), store.NewMemoryStore(), ns, false)
	require.NoError(t, err)
	eq.Replace([]models.Equipment{{ID: "e1", Quantity: 5}, {ID: "e2", Quantity: 1}})

	assert.True(t, eq.AdjustQuantity("e1", -2))
	assert.False(t, eq.AdjustQuantity("gone", 3))
	got, _ := eq.Get("e1")
	assert.Equal(t, 3, got.Quantity)
}

func TestBorrowRepo_Queries(t *testing.T) {
	br, err := LoadBorrows(context.Background(), store.NewMemoryStore(), ns)
	require.NoError(t, err)
	br.Upsert(models.Borrow{ID: "b1", UserID: "u1", Details: []models.BorrowDetail{{Amount: 3, ReturnedAmount: 1}}})
	br.Upsert(models.Borrow{ID: "b2", UserID: "u2", Details: []models.BorrowDetail{{Amount: 4}}})

	refs := br.ReferencingUser("u1")
	require.Len(t, refs, 1)
	assert.Equal(t, "b1", refs[0].ID)
	assert.Empty(t, br.ReferencingUser("u9"))
}

func TestSeed_IsValid(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range SeedUsers() {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.StudentID], "duplicate student id %s", u.StudentID)
		seen[u.StudentID] = true
	}
	for _, e := range SeedEquipment() {
		_, err := models.NewEquipment(e.Name, e.Category, e.Quantity, e.Status)
		assert.NoError(t, err)
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestCollections_KeyedByStoreKey(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo, err := NewRepo(ctx, st, Options{Namespace: ns, SeedOnEmpty: true})
	require.NoError(t, err)
	require.NoError(t, repo.Users.Save(ctx))
	require.NoError(t, repo.Equipment.Save(ctx))
	require.NoError(t, repo.Borrows.Save(ctx))

	for _, key := range []string{"test:users", "test:equipment", "test:borrows"} {
		_, err := st.Get(ctx, key)
		assert.NoError(t, err, key)
	}
	assert.Equal(t, "test:"+models.Borrow{}.StoreKey(), ns.Key(models.BorrowsKey))
}
