package feed_test

import (
	"context"
	"fmt"
	"testing"

	"Yatube/feed"
	"Yatube/models"
	"Yatube/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePaginatesNewestFirst(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.CreateUser(t, db, "author")
	for i := 1; i <= 13; i++ {
		testdb.CreatePost(t, db, author, nil, fmt.Sprintf("post %d", i))
	}
	assembler := feed.NewAssembler(db, 10)
	ctx := context.Background()

	first, err := assembler.Assemble(ctx, feed.All(), "")
	require.NoError(t, err)
	assert.Len(t, first.Posts, 10)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.NumPages)
	assert.Equal(t, int64(13), first.Count)
	assert.Equal(t, "post 13", first.Posts[0].Text)
	assert.Equal(t, "author", first.Posts[0].Author.Username)

	second, err := assembler.Assemble(ctx, feed.All(), "2")
	require.NoError(t, err)
	assert.Len(t, second.Posts, 3)
	assert.Equal(t, "post 1", second.Posts[2].Text)

	clamped, err := assembler.Assemble(ctx, feed.All(), "50")
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Number)
	assert.Len(t, clamped.Posts, 3)

	garbage, err := assembler.Assemble(ctx, feed.All(), "last")
	require.NoError(t, err)
	assert.Equal(t, 1, garbage.Number)
}

func TestAssembleFullLastPage(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.CreateUser(t, db, "author")
	for i := 1; i <= 20; i++ {
		testdb.CreatePost(t, db, author, nil, fmt.Sprintf("post %d", i))
	}
	assembler := feed.NewAssembler(db, 10)

	page, err := assembler.Assemble(context.Background(), feed.All(), "2")
	require.NoError(t, err)
	assert.Equal(t, 2, page.NumPages)
	assert.Equal(t, 2, page.Number)
	assert.False(t, page.HasNext())
	require.Len(t, page.Posts, 10)
	assert.Equal(t, "post 10", page.Posts[0].Text)
	assert.Equal(t, "post 1", page.Posts[9].Text)

	beyond, err := assembler.Assemble(context.Background(), feed.All(), "3")
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Number)
	assert.Len(t, beyond.Posts, 10)
}

func TestAssembleEmptyFeed(t *testing.T) {
	db := testdb.Open(t)
	page, err := feed.NewAssembler(db, 0).Assemble(context.Background(), feed.All(), "7")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.Equal(t, feed.DefaultPageSize, page.PerPage)
}

func TestAssembleGroupAndAuthorScopes(t *testing.T) {
	db := testdb.Open(t)
	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")
	cats := testdb.CreateGroup(t, db, "cats")
	dogs := testdb.CreateGroup(t, db, "dogs")

	catPost := testdb.CreatePost(t, db, alice, cats, "meow")
	testdb.CreatePost(t, db, bob, dogs, "woof")
	testdb.CreatePost(t, db, alice, nil, "no group")

	assembler := feed.NewAssembler(db, 10)
	ctx := context.Background()

	group, err := assembler.Assemble(ctx, feed.ForGroup(cats.ID), "")
	require.NoError(t, err)
	require.Len(t, group.Posts, 1)
	assert.Equal(t, catPost.ID, group.Posts[0].ID)
	require.NotNil(t, group.Posts[0].Group)
	assert.Equal(t, "cats", group.Posts[0].Group.Slug)

	byAlice, err := assembler.Assemble(ctx, feed.ForAuthor(alice.ID), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), byAlice.Count)
	for _, post := range byAlice.Posts {
		assert.Equal(t, alice.ID, post.AuthorID)
	}
}

func TestAssembleFollowerScope(t *testing.T) {
	db := testdb.Open(t)
	reader := testdb.CreateUser(t, db, "reader")
	followed := testdb.CreateUser(t, db, "followed")
	stranger := testdb.CreateUser(t, db, "stranger")

	testdb.CreatePost(t, db, followed, nil, "from followed")
	testdb.CreatePost(t, db, stranger, nil, "from stranger")
	testdb.CreatePost(t, db, reader, nil, "own post")

	assembler := feed.NewAssembler(db, 10)
	ctx := context.Background()

	empty, err := assembler.Assemble(ctx, feed.ForFollower(reader.ID), "")
	require.NoError(t, err)
	assert.Empty(t, empty.Posts)

	_, err = models.FollowAuthor(db, reader.ID, followed.ID)
	require.NoError(t, err)

	page, err := assembler.Assemble(ctx, feed.ForFollower(reader.ID), "")
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "from followed", page.Posts[0].Text)

	other, err := assembler.Assemble(ctx, feed.ForFollower(stranger.ID), "")
	require.NoError(t, err)
	assert.Empty(t, other.Posts)
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "all", feed.All().String())
	assert.Equal(t, "group:3", feed.ForGroup(3).String())
	assert.Equal(t, "author:4", feed.ForAuthor(4).String())
	assert.Equal(t, "follower:5", feed.ForFollower(5).String())
}
