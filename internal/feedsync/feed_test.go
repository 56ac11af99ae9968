package feedsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"memeshare/model"
)

func feedOf(titles ...string) (*Feed, []string) {
	memes := make([]model.Meme, 0, len(titles))
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		m := model.Meme{ID: bson.NewObjectID(), Title: title, AuthorID: "a", PublicID: "p"}
		memes = append(memes, m)
		ids = append(ids, m.ID.Hex())
	}
	return NewFeed(memes), ids
}

func TestFeed_PreservesOrder(t *testing.T) {
	f, _ := feedOf("one", "two", "three")

	got := f.Memes()
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "two", got[1].Title)
	assert.Equal(t, "three", got[2].Title)
}

func TestFeed_Remove(t *testing.T) {
	f, ids := feedOf("one", "two", "three")

	assert.True(t, f.Remove(ids[1]))
	assert.False(t, f.Remove(ids[1]), "removal is terminal")

	got := f.Memes()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "three", got[1].Title)
}

func TestFeed_GetReturnsLiveSnapshot(t *testing.T) {
	f, ids := feedOf("one")

	m, ok := f.Get(ids[0])
	require.True(t, ok)

	// A mutation through the live pointer shows up in the view immediately.
	m.ToggleLike("u1")
	got := f.Memes()
	assert.Equal(t, 1, got[0].LikeCount())
}

func TestFeed_CopiesInput(t *testing.T) {
	src := []model.Meme{{ID: bson.NewObjectID(), Title: "one", AuthorID: "a", PublicID: "p"}}
	f := NewFeed(src)

	src[0].Title = "mutated"
	assert.Equal(t, "one", f.Memes()[0].Title)
}

func TestNotifier_FansOutToAllSubscribers(t *testing.T) {
	n := NewNotifier()

	var a, b []string
	n.Subscribe(func(id string) { a = append(a, id) })
	n.Subscribe(func(id string) { b = append(b, id) })

	n.publish("x1")
	n.publish("x2")

	assert.Equal(t, []string{"x1", "x2"}, a)
	assert.Equal(t, []string{"x1", "x2"}, b)
}
