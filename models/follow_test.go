package models_test

import (
	"testing"

	"Yatube/models"
	"Yatube/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countFollows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowAuthorCreatesSingleEdge(t *testing.T) {
	db := testdb.Open(t)
	follower := testdb.CreateUser(t, db, "follower")
	author := testdb.CreateUser(t, db, "following")

	created, err := models.FollowAuthor(db, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = models.FollowAuthor(db, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, created, "second follow must be a no-op")

	assert.Equal(t, int64(1), countFollows(t, db))

	following, err := models.IsFollowing(db, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)

	reverse, err := models.IsFollowing(db, author.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowAuthorRejectsSelfFollow(t *testing.T) {
	db := testdb.Open(t)
	user := testdb.CreateUser(t, db, "loner")

	created, err := models.FollowAuthor(db, user.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(0), countFollows(t, db))
}

func TestSelfFollowRowViolatesCheckConstraint(t *testing.T) {
	db := testdb.Open(t)
	user := testdb.CreateUser(t, db, "sneaky")

	err := db.Create(&models.Follow{UserID: user.ID, AuthorID: user.ID}).Error
	assert.Error(t, err)
}

func TestUnfollowAuthorRemovesOnlyTargetEdge(t *testing.T) {
	db := testdb.Open(t)
	follower := testdb.CreateUser(t, db, "reader")
	first := testdb.CreateUser(t, db, "writer1")
	second := testdb.CreateUser(t, db, "writer2")

	for _, author := range []*models.User{first, second} {
		_, err := models.FollowAuthor(db, follower.ID, author.ID)
		require.NoError(t, err)
	}
	_, err := models.FollowAuthor(db, second.ID, first.ID)
	require.NoError(t, err)

	removed, err := models.UnfollowAuthor(db, follower.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(2), countFollows(t, db))

	stillFollowing, err := models.IsFollowing(db, follower.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, stillFollowing)

	otherEdge, err := models.IsFollowing(db, second.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, otherEdge)

	removed, err = models.UnfollowAuthor(db, follower.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, removed, "unfollowing twice is a no-op")
}

func TestFollowCounts(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.CreateUser(t, db, "popular")
	fans := []*models.User{
		testdb.CreateUser(t, db, "fan1"),
		testdb.CreateUser(t, db, "fan2"),
	}
	for _, fan := range fans {
		_, err := models.FollowAuthor(db, fan.ID, author.ID)
		require.NoError(t, err)
	}

	followers, err := models.CountFollowers(db, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)

	following, err := models.CountFollowing(db, fans[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), following)
}
