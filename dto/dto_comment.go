package dto

import "memeshare/model"

type CreateCommentReq struct {
	Text string `json:"text"`
}

type ListCommentsResp struct {
	Comments []model.Comment `json:"comments"`
	Count    int             `json:"count"`
}
