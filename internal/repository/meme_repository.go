package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"memeshare/configs"
	"memeshare/internal/cursor"
	"memeshare/internal/feedsync"
	"memeshare/model"
)

// ===== MongoDB stage/operator constants =====
const (
	StageAddFields = "$addFields"
	StageSort      = "$sort"
	StageLimit     = "$limit"
	StageMatch     = "$match"

	OpAddToSet = "$addToSet"
	OpPull     = "$pull"
	OpPush     = "$push"
)

// MemeRepository is the Feed Store adapter. All like/comment writes go through
// per-field operators so concurrent mutations of the same document merge in
// the store instead of racing through read-modify-write cycles.
type MemeRepository struct {
	col *mongo.Collection
	log *slog.Logger
}

func NewMemeRepository(db *mongo.Database, log *slog.Logger) *MemeRepository {
	if log == nil {
		log = slog.Default()
	}
	return &MemeRepository{col: db.Collection("memes"), log: log}
}

type ListOptions struct {
	Limit    int64
	Cursor   string
	AuthorID string
}

func clampLimit(n int64) int64 {
	if n <= 0 {
		return configs.DefaultLimitMemes
	}
	if n > configs.MaxLimitMemes {
		return configs.MaxLimitMemes
	}
	return n
}

// validateMeme rejects documents that would enter views with the fields the
// rest of the code assumes present.
func validateMeme(m *model.Meme) error {
	switch {
	case m.ID.IsZero():
		return fmt.Errorf("%w: missing id", feedsync.ErrMalformedRecord)
	case m.Title == "":
		return fmt.Errorf("%w: missing title", feedsync.ErrMalformedRecord)
	case m.AuthorID == "":
		return fmt.Errorf("%w: missing author", feedsync.ErrMalformedRecord)
	case m.PublicID == "":
		return fmt.Errorf("%w: missing image reference", feedsync.ErrMalformedRecord)
	}
	return nil
}

// List returns memes newest first with opaque cursor pagination. Malformed
// documents are dropped with a warning rather than failing the whole page.
func (r *MemeRepository) List(ctx context.Context, opts ListOptions) ([]model.Meme, *string, error) {
	lim := clampLimit(opts.Limit)

	filter := bson.M{}
	if opts.AuthorID != "" {
		filter["author_id"] = opts.AuthorID
	}
	if opts.Cursor != "" {
		createdAt, oid, err := cursor.DecodeFeedCursor(opts.Cursor)
		if err != nil {
			return nil, nil, err
		}
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": createdAt}},
			{"created_at": createdAt, "_id": bson.M{"$lt": oid}},
		}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(lim + 1)

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	var raw []model.Meme
	if err := cur.All(ctx, &raw); err != nil {
		return nil, nil, err
	}

	items, next := r.assemblePage(raw, lim)
	return items, next, nil
}

// assemblePage screens a raw limit+1 query result and decides the next cursor.
// Has-more is judged on the raw page before malformed documents are dropped,
// and the cursor keys on the raw page boundary, so a malformed document can
// shorten a page but never end pagination early.
func (r *MemeRepository) assemblePage(raw []model.Meme, lim int64) ([]model.Meme, *string) {
	hasMore := int64(len(raw)) == lim+1
	if hasMore {
		raw = raw[:lim]
	}

	items := make([]model.Meme, 0, len(raw))
	for i := range raw {
		if verr := validateMeme(&raw[i]); verr != nil {
			r.log.Warn("dropping malformed meme document", "id", raw[i].ID.Hex(), "err", verr)
			continue
		}
		items = append(items, raw[i])
	}

	var next *string
	if hasMore {
		last := raw[len(raw)-1]
		c := cursor.EncodeFeedCursor(last.CreatedAt, last.ID)
		next = &c
	}
	return items, next
}

// ListTrending returns memes ordered by like count descending. The count is
// computed in the pipeline from the likes array, so it can never drift from
// the set the way a separately maintained counter could.
func (r *MemeRepository) ListTrending(ctx context.Context, limit int64) ([]model.Meme, error) {
	lim := clampLimit(limit)

	pipe := mongo.Pipeline{
		{{Key: StageAddFields, Value: bson.M{
			"like_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
		}}},
		{{Key: StageSort, Value: bson.D{{Key: "like_count", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: StageLimit, Value: lim}},
	}

	cur, err := r.col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []model.Meme
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	items := make([]model.Meme, 0, len(raw))
	for i := range raw {
		if verr := validateMeme(&raw[i]); verr != nil {
			r.log.Warn("dropping malformed meme document", "id", raw[i].ID.Hex(), "err", verr)
			continue
		}
		items = append(items, raw[i])
	}
	return items, nil
}

func (r *MemeRepository) Get(ctx context.Context, id string) (model.Meme, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.Meme{}, feedsync.ErrNotFound
	}

	var m model.Meme
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Meme{}, feedsync.ErrNotFound
		}
		return model.Meme{}, err
	}
	if err := validateMeme(&m); err != nil {
		return model.Meme{}, err
	}
	return m, nil
}

// Insert creates the meme document and returns the store-assigned id.
func (r *MemeRepository) Insert(ctx context.Context, m model.Meme) (string, error) {
	if m.Likes == nil {
		m.Likes = []string{}
	}
	if m.Comments == nil {
		m.Comments = []model.Comment{}
	}
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MemeRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// AddLike adds userID to the meme's like set. $addToSet makes the call
// idempotent; a matched count of zero means the meme is already gone and the
// mutation resolves as a no-op.
func (r *MemeRepository) AddLike(ctx context.Context, memeID, userID string) error {
	return r.updateByID(ctx, memeID, bson.M{OpAddToSet: bson.M{"likes": userID}})
}

// RemoveLike removes userID from the like set, with the same no-op semantics.
func (r *MemeRepository) RemoveLike(ctx context.Context, memeID, userID string) error {
	return r.updateByID(ctx, memeID, bson.M{OpPull: bson.M{"likes": userID}})
}

// AppendComment appends c to the comments array, preserving insertion order.
func (r *MemeRepository) AppendComment(ctx context.Context, memeID string, c model.Comment) error {
	return r.updateByID(ctx, memeID, bson.M{OpPush: bson.M{"comments": c}})
}

func (r *MemeRepository) updateByID(ctx context.Context, memeID string, update bson.M) error {
	oid, err := bson.ObjectIDFromHex(memeID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
