package service

import (
	"context"
	"sort"
	"testing"
	"time"

	dom "todoapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemRepo mimics the Postgres repo in memory: server-assigned ids and
// timestamps, completed_at kept in sync by SetCompleted, pgx.ErrNoRows on miss.
type fakeItemRepo struct {
	items  map[int64]dom.Item
	nextID int64
	now    time.Time
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:  make(map[int64]dom.Item),
		nextID: 1,
		now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so created_at values are distinct.
func (r *fakeItemRepo) tick() time.Time {
	r.now = r.now.Add(time.Second)
	return r.now
}

func (r *fakeItemRepo) Create(_ context.Context, name string) (dom.Item, error) {
	now := r.tick()
	it := dom.Item{
		ID:        r.nextID,
		Name:      name,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (dom.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return dom.Item{}, pgx.ErrNoRows
	}
	return it, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]dom.Item, error) {
	list := make([]dom.Item, 0, len(r.items))
	for _, it := range r.items {
		list = append(list, it)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *fakeItemRepo) SetCompleted(_ context.Context, id int64, completed bool) (dom.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return dom.Item{}, pgx.ErrNoRows
	}
	now := r.tick()
	it.Completed = completed
	if completed {
		it.CompletedAt = &now
	} else {
		it.CompletedAt = nil
	}
	it.UpdatedAt = now
	r.items[id] = it
	return it, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func TestItemService_Create(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)

	it, err := svc.Create(context.Background(), "Buy milk")
	require.NoError(t, err)

	assert.NotZero(t, it.ID)
	assert.Equal(t, "Buy milk", it.Name)
	assert.False(t, it.Completed)
	assert.Nil(t, it.CompletedAt)
	assert.False(t, it.CreatedAt.IsZero())
	assert.False(t, it.UpdatedAt.IsZero())
}

func TestItemService_Create_TrimsName(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)

	it, err := svc.Create(context.Background(), "  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", it.Name)
}

func TestItemService_Create_EmptyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "spaces only", input: "   "},
		{name: "tabs and newlines", input: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepo()
			svc := NewItemService(repo, nil)

			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrEmptyName)
			assert.Empty(t, repo.items, "store must stay unchanged")
		})
	}
}

func TestItemService_List_NewestFirst(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, name)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
	assert.Equal(t, "A", list[2].Name)
}

func TestItemService_SetCompleted_RoundTrip(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	done, err := svc.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.UpdatedAt.After(created.UpdatedAt))

	reopened, err := svc.SetCompleted(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestItemService_SetCompleted_NotFound(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	_, err = svc.SetCompleted(ctx, 999, true)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "store must stay unchanged")
}

func TestItemService_GetByID(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemService_Delete(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.SetCompleted(ctx, created.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemService_Delete_NotFoundIdempotent(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := svc.Delete(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}
