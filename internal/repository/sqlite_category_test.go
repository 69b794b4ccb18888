package repository

import (
	"context"
	"testing"

	"github.com/felixgrant/punchcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_SeededDefaults(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 5, "migrations seed five default types")

	regular, err := repo.GetByName(ctx, "Regular Work")
	require.NoError(t, err)
	assert.True(t, regular.Active)
	assert.Equal(t, "Standard work hours", regular.Description)
}

func TestCategoryRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	cat := testutil.NewTestCategory("On Call")
	cat.Description = "Carrying the pager"
	require.NoError(t, repo.Create(ctx, cat))

	fetched, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "On Call", fetched.Name)
	assert.Equal(t, "Carrying the pager", fetched.Description)
	assert.True(t, fetched.Active)
}

func TestCategoryRepo_GetByName_NotFound(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))

	_, err := repo.GetByName(context.Background(), "Nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCategory("On Call")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestCategory("On Call")))
}

func TestCategoryRepo_ListFiltersInactive(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	retired := testutil.NewTestCategory("Retired Type")
	retired.Active = false
	require.NoError(t, repo.Create(ctx, retired))

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	for _, c := range active {
		assert.True(t, c.Active)
	}

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, len(active)+1)
}
