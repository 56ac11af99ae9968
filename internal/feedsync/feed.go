package feedsync

import (
	"sync"

	"memeshare/model"
)

// Feed is one view's local copy of a meme collection, kept in the order the
// store returned it. Views register with a Notifier so a delete performed
// anywhere removes the meme from every copy.
type Feed struct {
	mu    sync.Mutex
	memes []*model.Meme
}

func NewFeed(memes []model.Meme) *Feed {
	f := &Feed{memes: make([]*model.Meme, 0, len(memes))}
	for i := range memes {
		m := memes[i]
		f.memes = append(f.memes, &m)
	}
	return f
}

// Get returns the live local snapshot for id. Mutator operations act on this
// pointer, so optimistic transitions show up in the view immediately.
func (f *Feed) Get(id string) (*model.Meme, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.memes {
		if m.ID.Hex() == id {
			return m, true
		}
	}
	return nil, false
}

// Remove drops the meme with id from the view. Removal is terminal: there is
// no transition back to visible.
func (f *Feed) Remove(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.memes {
		if m.ID.Hex() == id {
			f.memes = append(f.memes[:i], f.memes[i+1:]...)
			return true
		}
	}
	return false
}

// Memes returns a copy of the current collection in display order.
func (f *Feed) Memes() []model.Meme {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Meme, 0, len(f.memes))
	for _, m := range f.memes {
		out = append(out, *m)
	}
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.memes)
}
