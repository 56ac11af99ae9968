package repository

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"memeshare/configs"
	"memeshare/internal/cursor"
	"memeshare/internal/feedsync"
	"memeshare/model"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, int64(configs.DefaultLimitMemes), clampLimit(0))
	assert.Equal(t, int64(configs.DefaultLimitMemes), clampLimit(-5))
	assert.Equal(t, int64(7), clampLimit(7))
	assert.Equal(t, int64(configs.MaxLimitMemes), clampLimit(9999))
}

func TestValidateMeme(t *testing.T) {
	valid := model.Meme{
		ID:       bson.NewObjectID(),
		PublicID: "m1",
		Title:    "cat",
		AuthorID: "u1",
	}
	assert.NoError(t, validateMeme(&valid))

	cases := map[string]func(m *model.Meme){
		"missing id":     func(m *model.Meme) { m.ID = bson.ObjectID{} },
		"missing title":  func(m *model.Meme) { m.Title = "" },
		"missing author": func(m *model.Meme) { m.AuthorID = "" },
		"missing image":  func(m *model.Meme) { m.PublicID = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := valid
			mutate(&m)
			assert.ErrorIs(t, validateMeme(&m), feedsync.ErrMalformedRecord)
		})
	}
}

func rawPage(n int) []model.Meme {
	out := make([]model.Meme, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Meme{
			ID:        bson.NewObjectID(),
			PublicID:  "p",
			Title:     "cat",
			AuthorID:  "u1",
			CreatedAt: int64(1700000000000 - i), // newest first, like the query sort
		})
	}
	return out
}

func TestAssemblePage_FullPage(t *testing.T) {
	r := &MemeRepository{log: slog.Default()}
	raw := rawPage(3) // limit+1 rows back from the store

	items, next := r.assemblePage(raw, 2)

	assert.Len(t, items, 2)
	require.NotNil(t, next)
	createdAt, oid, err := cursor.DecodeFeedCursor(*next)
	require.NoError(t, err)
	assert.Equal(t, raw[1].CreatedAt, createdAt)
	assert.Equal(t, raw[1].ID, oid)
}

func TestAssemblePage_LastPage(t *testing.T) {
	r := &MemeRepository{log: slog.Default()}
	items, next := r.assemblePage(rawPage(2), 2)

	assert.Len(t, items, 2)
	assert.Nil(t, next)
}

func TestAssemblePage_MalformedDocumentKeepsPaginating(t *testing.T) {
	r := &MemeRepository{log: slog.Default()}
	raw := rawPage(3)
	raw[1].Title = "" // malformed document in the middle of a full page

	items, next := r.assemblePage(raw, 2)

	// The bad document is dropped from the page, but the page boundary and
	// the next cursor still come from the raw result, so older documents
	// stay reachable.
	require.Len(t, items, 1)
	assert.Equal(t, raw[0].ID, items[0].ID)
	require.NotNil(t, next)
	createdAt, oid, err := cursor.DecodeFeedCursor(*next)
	require.NoError(t, err)
	assert.Equal(t, raw[1].CreatedAt, createdAt)
	assert.Equal(t, raw[1].ID, oid)
}
