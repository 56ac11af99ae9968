package handlers

import (
	"github.com/gofiber/fiber/v2"

	"memeshare/dto"
	"memeshare/internal/authctx"
	"memeshare/internal/feedsync"
)

type CommentHandler struct {
	Repo    MemeStore
	Mutator *feedsync.Mutator
}

// Create godoc
// @Summary Add a comment to a meme
// @Param   id   path string               true "meme id"
// @Param   body body dto.CreateCommentReq true "comment text"
// @Success 201 {object} model.Comment
// @Security BearerAuth
// @Router  /api/memes/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	m, err := h.Repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mutationError(c, err)
	}

	com, err := h.Mutator.AddComment(c.Context(), &m, user, body.Text)
	if err != nil {
		return mutationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(com)
}

// List godoc
// @Summary List a meme's comments in insertion order
// @Param   id path string true "meme id"
// @Success 200 {object} dto.ListCommentsResp
// @Router  /api/memes/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	m, err := h.Repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mutationError(c, err)
	}

	return c.JSON(dto.ListCommentsResp{
		Comments: m.Comments,
		Count:    len(m.Comments),
	})
}
