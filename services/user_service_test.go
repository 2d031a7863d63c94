package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/inkpost/models"
)

func TestUserCreateAndFindByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "Ada", "ada@example.com")
	require.NotEmpty(t, u.ID)

	view, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", view.Name)
	assert.Equal(t, "ada@example.com", view.Email)
	assert.Zero(t, view.Articles)
	assert.Zero(t, view.Favorites)
	assert.Zero(t, view.Followers)
	assert.False(t, view.CreatedAt.IsZero())
}

func TestUserFindByIDMissing(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.FindByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.user(t, "first", "dup@example.com")

	_, err := f.users.Create(context.Background(), &models.User{Name: "second", Email: "dup@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserFindByEmail(t *testing.T) {
	f := newFixture(t)
	f.user(t, "Ada", "ada@example.com")

	u, err := f.users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.Password)

	_, err = f.users.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserEmailTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ada", "ada@example.com")

	taken, err := f.users.EmailTaken(ctx, "ada@example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = f.users.EmailTaken(ctx, "ada@example.com", u.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserFindAndCountAllPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedUsers(t, f, 25)

	p1, err := f.users.FindAndCountAll(ctx, UserFilters{Pagination: page(1, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 25, p1.Count)
	require.Len(t, p1.Rows, 10)
	assert.Equal(t, "user-00", p1.Rows[0].Name)

	p3, err := f.users.FindAndCountAll(ctx, UserFilters{Pagination: page(3, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 25, p3.Count)
	assert.Len(t, p3.Rows, 5)
	assert.Equal(t, "user-20", p3.Rows[0].Name)

	beyond, err := f.users.FindAndCountAll(ctx, UserFilters{Pagination: page(9, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 25, beyond.Count)
	assert.NotNil(t, beyond.Rows)
	assert.Empty(t, beyond.Rows)

	desc, err := f.users.FindAndCountAll(ctx, UserFilters{Pagination: page(1, 3), Order: OrderDescending})
	require.NoError(t, err)
	require.Len(t, desc.Rows, 3)
	assert.Equal(t, "user-24", desc.Rows[0].Name)
	assert.Equal(t, "user-22", desc.Rows[2].Name)
}

func TestUserFindAndCountAllEmpty(t *testing.T) {
	f := newFixture(t)
	p, err := f.users.FindAndCountAll(context.Background(), UserFilters{})
	require.NoError(t, err)
	assert.Zero(t, p.Count)
	assert.NotNil(t, p.Rows)
	assert.Empty(t, p.Rows)
}

func TestUserFindIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "Alice Smith", "alice@example.com")
	f.user(t, "Bob", "ALICE.BOB@EXAMPLE.COM")
	f.user(t, "Carol", "carol@example.com")

	p, err := f.users.FindAndCountAll(ctx, UserFilters{Find: "aLiCe"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.Count)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "Alice Smith", p.Rows[0].Name)
	assert.Equal(t, "Bob", p.Rows[1].Name)
}

func TestUserDerivedCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.user(t, "author", "author@example.com")
	reader := f.user(t, "reader", "reader@example.com")
	other := f.user(t, "other", "other@example.com")

	a1 := f.article(t, author.ID, "one", "first")
	a2 := f.article(t, author.ID, "two", "second")
	_, _, err := f.likes.Create(ctx, reader.ID, a1.ID)
	require.NoError(t, err)
	_, _, err = f.likes.Create(ctx, reader.ID, a2.ID)
	require.NoError(t, err)
	_, err = f.users.CreateFollow(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	_, err = f.users.CreateFollow(ctx, other.ID, author.ID)
	require.NoError(t, err)

	av, err := f.users.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, av.Articles)
	assert.EqualValues(t, 0, av.Favorites)
	assert.EqualValues(t, 2, av.Followers)

	rv, err := f.users.FindByID(ctx, reader.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rv.Articles)
	assert.EqualValues(t, 2, rv.Favorites)
	assert.EqualValues(t, 0, rv.Followers)

	// counts in listings match the detail view
	p, err := f.users.FindAndCountAll(ctx, UserFilters{Find: "author"})
	require.NoError(t, err)
	require.Len(t, p.Rows, 1)
	assert.EqualValues(t, 2, p.Rows[0].Articles)
	assert.EqualValues(t, 2, p.Rows[0].Followers)
}

func TestUserUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ada", "ada@example.com")
	f.user(t, "Grace", "grace@example.com")

	view, err := f.users.Update(ctx, u.ID, UserUpdate{Biography: ptr("mathematician")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", view.Name)
	require.NotNil(t, view.Biography)
	assert.Equal(t, "mathematician", *view.Biography)

	_, err = f.users.Update(ctx, u.ID, UserUpdate{Email: ptr("grace@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.users.Update(ctx, "missing", UserUpdate{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gone := f.user(t, "gone", "gone@example.com")
	stays := f.user(t, "stays", "stays@example.com")

	own := f.article(t, gone.ID, "mine", "body")
	theirs := f.article(t, stays.ID, "theirs", "body")
	_, _, err := f.likes.Create(ctx, stays.ID, own.ID)
	require.NoError(t, err)
	_, _, err = f.likes.Create(ctx, gone.ID, theirs.ID)
	require.NoError(t, err)
	_, err = f.users.CreateFollow(ctx, gone.ID, stays.ID)
	require.NoError(t, err)
	_, err = f.users.CreateFollow(ctx, stays.ID, gone.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteByID(ctx, gone.ID))

	var n int64
	require.NoError(t, f.db.Model(&models.Article{}).Where("user_id = ?", gone.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, f.db.Model(&models.Like{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, f.db.Model(&models.Follower{}).Count(&n).Error)
	assert.Zero(t, n)

	view, err := f.users.FindByID(ctx, stays.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.Articles)
	assert.Zero(t, view.Followers)

	assert.ErrorIs(t, f.users.DeleteByID(ctx, gone.ID), ErrUserNotFound)
}

func TestCreateFollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a", "a@example.com")
	b := f.user(t, "b", "b@example.com")

	edge, err := f.users.CreateFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, edge.FollowerID)
	assert.Equal(t, b.ID, edge.FollowedID)

	_, err = f.users.CreateFollow(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	_, err = f.users.CreateFollow(ctx, a.ID, a.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	// the reverse edge is a different pair
	_, err = f.users.CreateFollow(ctx, b.ID, a.ID)
	assert.NoError(t, err)
}

func TestFollowListingsAndUnfollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	star := f.user(t, "star", "star@example.com")
	fans := seedUsers(t, f, 3)
	for _, fan := range fans {
		_, err := f.users.CreateFollow(ctx, fan.ID, star.ID)
		require.NoError(t, err)
	}

	followers, err := f.users.ListFollowers(ctx, star.ID, UserFilters{Pagination: page(1, 2)})
	require.NoError(t, err)
	assert.EqualValues(t, 3, followers.Count)
	require.Len(t, followers.Rows, 2)
	assert.Equal(t, "user-00", followers.Rows[0].Name)

	following, err := f.users.ListFollowing(ctx, fans[0].ID, UserFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, following.Count)
	require.Len(t, following.Rows, 1)
	assert.Equal(t, star.ID, following.Rows[0].ID)
	assert.EqualValues(t, 3, following.Rows[0].Followers)

	require.NoError(t, f.users.Unfollow(ctx, star.ID, fans[0].ID))
	require.NoError(t, f.users.Unfollow(ctx, star.ID, fans[0].ID))

	followers, err = f.users.ListFollowers(ctx, star.ID, UserFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers.Count)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a", "a@example.com")
	b := f.user(t, "b", "b@example.com")
	art := f.article(t, a.ID, "t", "c")
	_, _, err := f.likes.Create(ctx, b.ID, art.ID)
	require.NoError(t, err)
	_, err = f.users.CreateFollow(ctx, b.ID, a.ID)
	require.NoError(t, err)

	st, err := f.users.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Users: 2, Articles: 1, Likes: 1, Follows: 1}, st)
}

func TestUserFindMatchesWildcardsLiterally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "50%_off", "deals@example.com")
	f.user(t, "plain", "plain@example.com")

	for find, want := range map[string]int64{"%": 1, "_": 1, "0%_": 1, "!": 0, "plain": 1} {
		p, err := f.users.FindAndCountAll(ctx, UserFilters{Find: find})
		require.NoError(t, err)
		assert.Equal(t, want, p.Count, find)
	}
}
