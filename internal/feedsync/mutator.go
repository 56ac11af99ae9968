package feedsync

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"memeshare/internal/authctx"
	"memeshare/model"
)

// anonymousName is used when the auth provider supplies no display name.
const anonymousName = "Anonymous"

// OpStatus is what a view shows next to an affordance: whether the operation
// is in flight and the error from the last attempt, cleared on the next one.
type OpStatus struct {
	InFlight bool
	Err      error
}

type opState struct {
	mu       sync.Mutex
	inFlight bool
	lastErr  error
}

func (s *opState) begin() {
	s.mu.Lock()
	s.inFlight = true
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *opState) done(err error) {
	s.mu.Lock()
	s.inFlight = false
	s.lastErr = err
	s.mu.Unlock()
}

func (s *opState) status() OpStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OpStatus{InFlight: s.inFlight, Err: s.lastErr}
}

// Mutator turns user gestures into an immediate local transition plus a
// durable remote mutation against the Feed Store. Likes and comments are
// optimistic: the local change is applied before the remote call and is kept
// even when the remote call fails (the failure is only surfaced through the
// returned error and the op status). Deletes are the opposite: the local
// collection changes only after the store delete succeeded.
type Mutator struct {
	store    Store
	media    Media
	notifier *Notifier
	log      *slog.Logger

	likeOp    opState
	commentOp opState
	deleteOp  opState
}

func NewMutator(store Store, media Media, notifier *Notifier, log *slog.Logger) *Mutator {
	if log == nil {
		log = slog.Default()
	}
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &Mutator{store: store, media: media, notifier: notifier, log: log}
}

func (mu *Mutator) Notifier() *Notifier { return mu.notifier }

func (mu *Mutator) LikeStatus() OpStatus    { return mu.likeOp.status() }
func (mu *Mutator) CommentStatus() OpStatus { return mu.commentOp.status() }
func (mu *Mutator) DeleteStatus() OpStatus  { return mu.deleteOp.status() }

// ToggleLike flips the acting user's membership in the meme's like set. The
// local flip happens first; the remote $addToSet/$pull follows and is
// idempotent, so a replayed call cannot corrupt the set. liked reports the
// new local state regardless of the remote outcome.
func (mu *Mutator) ToggleLike(ctx context.Context, m *model.Meme, user authctx.User) (liked bool, err error) {
	if user.ID == "" {
		return false, ErrUnauthenticated
	}

	mu.likeOp.begin()
	liked = m.ToggleLike(user.ID)

	if liked {
		err = mu.store.AddLike(ctx, m.ID.Hex(), user.ID)
	} else {
		err = mu.store.RemoveLike(ctx, m.ID.Hex(), user.ID)
	}
	if err != nil {
		err = &RemoteMutationError{Op: "toggle like", Err: err}
		mu.log.Warn("like not persisted", "meme", m.ID.Hex(), "user", user.ID, "err", err)
	}
	mu.likeOp.done(err)
	return liked, err
}

// AddComment appends a comment built from the acting user's snapshot and the
// trimmed text. Validation happens before any state change: no user or blank
// text means no local append and no remote call. On remote failure the local
// append stays.
func (mu *Mutator) AddComment(ctx context.Context, m *model.Meme, user authctx.User, text string) (model.Comment, error) {
	if user.ID == "" {
		return model.Comment{}, ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, ErrEmptyInput
	}

	name := user.DisplayName
	if name == "" {
		name = anonymousName
	}
	c := model.Comment{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  name,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}

	mu.commentOp.begin()
	m.Comments = append(m.Comments, c)

	err := mu.store.AppendComment(ctx, m.ID.Hex(), c)
	if err != nil {
		err = &RemoteMutationError{Op: "add comment", Err: err}
		mu.log.Warn("comment not persisted", "meme", m.ID.Hex(), "user", user.ID, "err", err)
	}
	mu.commentOp.done(err)
	return c, err
}

// DeleteMeme removes the meme for its author. The store delete must succeed;
// only then is the associated image destroyed (best effort, failure logged
// and swallowed), the meme dropped from view, and the deletion broadcast so
// every other view holding a copy drops it too. On store failure the meme
// stays visible everywhere. view may be nil when the caller holds no local
// collection.
func (mu *Mutator) DeleteMeme(ctx context.Context, view *Feed, m *model.Meme, user authctx.User) error {
	if user.ID == "" {
		return ErrUnauthenticated
	}
	if user.ID != m.AuthorID {
		return ErrNotOwner
	}

	mu.deleteOp.begin()

	deleted, err := mu.store.Delete(ctx, m.ID.Hex())
	if err != nil {
		werr := &RemoteMutationError{Op: "delete meme", Err: err}
		mu.deleteOp.done(werr)
		return werr
	}
	if !deleted {
		// Already gone remotely; drop our copies and report not-found.
		if view != nil {
			view.Remove(m.ID.Hex())
		}
		mu.notifier.publish(m.ID.Hex())
		mu.deleteOp.done(ErrNotFound)
		return ErrNotFound
	}

	if mu.media != nil && m.PublicID != "" {
		if derr := mu.media.Destroy(ctx, m.PublicID); derr != nil {
			mu.log.Warn("image cleanup failed", "meme", m.ID.Hex(), "public_id", m.PublicID, "err", derr)
		}
	}

	if view != nil {
		view.Remove(m.ID.Hex())
	}
	mu.notifier.publish(m.ID.Hex())
	mu.deleteOp.done(nil)
	return nil
}
