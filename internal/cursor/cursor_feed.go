package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalid = errors.New("invalid cursor")

// FeedCursor keys newest-first pagination on (created_at, _id) so memes that
// share a millisecond still page deterministically.
type FeedCursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func EncodeFeedCursor(createdAt int64, id bson.ObjectID) string {
	b, _ := json.Marshal(FeedCursor{
		CreatedAt: createdAt,
		ID:        id.Hex(),
	})
	return base64.StdEncoding.EncodeToString(b)
}

func DecodeFeedCursor(s string) (int64, bson.ObjectID, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, bson.NilObjectID, ErrInvalid
	}

	var p FeedCursor
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, bson.NilObjectID, ErrInvalid
	}

	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return 0, bson.NilObjectID, ErrInvalid
	}

	return p.CreatedAt, oid, nil
}
