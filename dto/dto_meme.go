package dto

import "memeshare/model"

type ListMemesResp struct {
	Items      []model.Meme `json:"items"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// LikeResp reflects the post-toggle local state, which the client shows
// before the remote write is confirmed.
type LikeResp struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
}
