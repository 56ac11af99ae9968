package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike_SetSemantics(t *testing.T) {
	m := Meme{Likes: []string{}}

	assert.True(t, m.ToggleLike("u1"))
	assert.Equal(t, []string{"u1"}, m.Likes)
	assert.True(t, m.Liked("u1"))

	// Toggling twice restores the original set and count.
	assert.False(t, m.ToggleLike("u1"))
	assert.Empty(t, m.Likes)
	assert.False(t, m.Liked("u1"))
}

func TestToggleLike_IndependentUsers(t *testing.T) {
	m := Meme{Likes: []string{"u1"}}

	assert.True(t, m.ToggleLike("u2"))
	assert.Equal(t, 2, m.LikeCount())

	assert.False(t, m.ToggleLike("u1"))
	assert.Equal(t, []string{"u2"}, m.Likes)
}
