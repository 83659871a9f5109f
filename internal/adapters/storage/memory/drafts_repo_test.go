package memory

import (
	"context"
	"testing"
	"time"

	"animal-id-card/internal/domain/drafts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftsRepo_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewDraftsRepo(0)

	_, err := store.Load(ctx, "d1")
	assert.ErrorIs(t, err, drafts.ErrNotFound)

	require.NoError(t, store.Save(ctx, "d1", drafts.Draft{Name: "Rex", Birthmark: "2"}))

	got, err := store.Load(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, "2", got.Birthmark)

	require.NoError(t, store.Delete(ctx, "d1"))
	_, err = store.Load(ctx, "d1")
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}

func TestDraftsRepo_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	store := NewDraftsRepo(time.Hour).(*draftsRepo)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "d1", drafts.Draft{Name: "Mia"}))

	now = now.Add(59 * time.Minute)
	_, err := store.Load(ctx, "d1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Load(ctx, "d1")
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}

func TestDraftsRepo_SavePrunesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	store := NewDraftsRepo(time.Hour).(*draftsRepo)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "old", drafts.Draft{Name: "Rex"}))
	now = now.Add(30 * time.Minute)
	require.NoError(t, store.Save(ctx, "recent", drafts.Draft{Name: "Mia"}))

	// "old" nunca se vuelve a leer
	now = now.Add(45 * time.Minute)
	require.NoError(t, store.Save(ctx, "new", drafts.Draft{Name: "Tom"}))

	assert.Len(t, store.byID, 2)
	assert.NotContains(t, store.byID, "old")
	assert.Contains(t, store.byID, "recent")
}

func TestProfilesRepo_IDsAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewProfilesRepo()

	for _, n := range []string{"Rex", "Mia", "Bella"} {
		_, err := repo.Create(ctx, newProfile(n))
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, 2))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[1].ID)

	// los ids no se reutilizan
	id, err := repo.Create(ctx, newProfile("Tom"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}
