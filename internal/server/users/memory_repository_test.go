package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsIDs(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	a, err := r.Create(ctx, &User{Email: "a@x.io"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	b, err := r.Create(ctx, &User{ID: 10, Email: "b@x.io"})
	require.NoError(t, err)
	assert.Equal(t, 10, b.ID)

	c, err := r.Create(ctx, &User{Email: "c@x.io"})
	require.NoError(t, err)
	assert.Equal(t, 11, c.ID)
}

func TestMemoryRepository_CreateDuplicates(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &User{ID: 1, Email: "a@x.io"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &User{Email: "A@X.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = r.Create(ctx, &User{ID: 1, Email: "other@x.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestMemoryRepository_GetByEmailCaseInsensitive(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	_, _ = r.Create(ctx, &User{Email: "Eve.Holt@reqres.in", FirstName: "Eve"})

	u, err := r.GetByEmail(ctx, "eve.holt@REQRES.in")
	require.NoError(t, err)
	assert.Equal(t, "Eve", u.FirstName)

	_, err = r.GetByEmail(ctx, "nobody@reqres.in")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ListOrderedAndWindowed(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	for _, id := range []int{5, 1, 3, 2, 4} {
		_, err := r.Create(ctx, &User{ID: id, Email: AvatarURL(id)})
		require.NoError(t, err)
	}

	got, err := r.List(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{got[0].ID, got[1].ID, got[2].ID})

	got, err = r.List(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.List(ctx, 0, 1<<62)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestMemoryRepository_UpdatePartial(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	_, _ = r.Create(ctx, &User{ID: 1, Email: "a@x.io", FirstName: "A", LastName: "Z"})
	_, _ = r.Create(ctx, &User{ID: 2, Email: "b@x.io"})

	name := "Alpha"
	u, err := r.Update(ctx, 1, Patch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", u.FirstName)
	assert.Equal(t, "Z", u.LastName)
	assert.Equal(t, "a@x.io", u.Email)

	taken := "b@x.io"
	_, err = r.Update(ctx, 1, Patch{Email: &taken})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	same := "A@x.io"
	_, err = r.Update(ctx, 1, Patch{Email: &same})
	assert.NoError(t, err)

	_, err = r.Update(ctx, 99, Patch{FirstName: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	_, _ = r.Create(ctx, &User{ID: 1, Email: "a@x.io"})

	require.NoError(t, r.Delete(ctx, 1))
	assert.ErrorIs(t, r.Delete(ctx, 1), common.ErrorNotFound)

	_, err := r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
