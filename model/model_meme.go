package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Meme is a single post in the "memes" collection. Likes is an array with set
// semantics (a user id appears at most once); Comments is append-only and kept
// in insertion order. Both are mutated remotely with per-field operators
// ($addToSet/$pull/$push), never with a read-modify-write of the document.
type Meme struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	PublicID   string        `json:"publicId"   bson:"public_id"`
	ImageURL   string        `json:"imageUrl"   bson:"image_url"`
	Title      string        `json:"title"      bson:"title"`
	AuthorID   string        `json:"authorId"   bson:"author_id"`
	AuthorName string        `json:"authorName" bson:"author_name"`
	Likes      []string      `json:"likes"      bson:"likes"`
	Comments   []Comment     `json:"comments"   bson:"comments"`
	CreatedAt  int64         `json:"createdAt"  bson:"created_at"` // epoch millis
}

// Liked reports whether userID is a member of the like set.
func (m *Meme) Liked(userID string) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (m *Meme) LikeCount() int { return len(m.Likes) }

// ToggleLike flips membership of userID in the like set and reports the new
// state: true when the user is now a liker, false when the like was removed.
func (m *Meme) ToggleLike(userID string) bool {
	for i, id := range m.Likes {
		if id == userID {
			m.Likes = append(m.Likes[:i], m.Likes[i+1:]...)
			return false
		}
	}
	m.Likes = append(m.Likes, userID)
	return true
}
