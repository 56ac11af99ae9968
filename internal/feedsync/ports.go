package feedsync

import (
	"context"

	"memeshare/model"
)

// Store is the slice of the Feed Store the mutator needs. All three mutations
// must be atomic per-field operators on the meme document: AddLike/RemoveLike
// carry set semantics (commutative, replay-safe), AppendComment appends.
// Implementations must treat a missing target document as a no-op, not an
// error, so a mutation racing a delete resolves quietly.
type Store interface {
	AddLike(ctx context.Context, memeID, userID string) error
	RemoveLike(ctx context.Context, memeID, userID string) error
	AppendComment(ctx context.Context, memeID string, c model.Comment) error

	// Delete removes the meme document. deleted is false when no document
	// matched the id.
	Delete(ctx context.Context, memeID string) (deleted bool, err error)
}

// Media is the slice of the Media Store the mutator needs. Destroy failures
// never fail the enclosing delete.
type Media interface {
	Destroy(ctx context.Context, publicID string) error
}
