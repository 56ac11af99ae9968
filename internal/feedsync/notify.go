package feedsync

import "sync"

// Notifier fans a deleted meme id out to every registered view. This is the
// only cross-view signal in the package: likes and comments stay local to the
// view that issued them.
type Notifier struct {
	mu   sync.Mutex
	subs []func(id string)
}

func NewNotifier() *Notifier { return &Notifier{} }

// Subscribe registers fn to be called with the id of every deleted meme.
// A Feed subscribes with its Remove method.
func (n *Notifier) Subscribe(fn func(id string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *Notifier) publish(id string) {
	n.mu.Lock()
	subs := make([]func(id string), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
}
