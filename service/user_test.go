package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, 60)
	place := env.createPlace(t, "Library", origin, false, 0)
	reward := env.createReward(t, "Bookmark", 20, true, nil)

	_, err := env.users.Bookmark(ctx, user.ID, place.ID)
	require.NoError(t, err)
	_, err = env.rewards.Redeem(ctx, user.ID, reward.ID)
	require.NoError(t, err)

	profile, err := env.users.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, int64(40), profile.PointsTotal)
	assert.Equal(t, []uint64{place.ID}, profile.Bookmarks)
	require.Len(t, profile.RedeemedRewards, 1)
	assert.Equal(t, "Bookmark", profile.RedeemedRewards[0].Name)

	_, err = env.users.Profile(ctx, 9999)
	requireBizCode(t, err, http.StatusNotFound)
}

func TestProfile_EmptyCollections(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, 0)

	profile, err := env.users.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile.Bookmarks)
	assert.Empty(t, profile.Bookmarks)
	assert.NotNil(t, profile.RedeemedRewards)
}

func TestBookmarks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, 0)
	a := env.createPlace(t, "a", origin, false, 0)
	b := env.createPlace(t, "b", origin, false, 0)

	ids, err := env.users.Bookmark(ctx, user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID}, ids)

	// 重复收藏保持集合语义
	ids, err = env.users.Bookmark(ctx, user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID}, ids)

	ids, err = env.users.Bookmark(ctx, user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID, b.ID}, ids)

	_, err = env.users.Bookmark(ctx, user.ID, 9999)
	requireBizCode(t, err, http.StatusNotFound)

	ids, err = env.users.Unbookmark(ctx, user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{b.ID}, ids)

	// 删除不存在的收藏不报错
	ids, err = env.users.Unbookmark(ctx, user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{b.ID}, ids)
}
