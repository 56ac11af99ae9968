package handlers

import (
	"github.com/gofiber/fiber/v2"

	"memeshare/dto"
	"memeshare/internal/authctx"
	"memeshare/internal/feedsync"
)

type LikeHandler struct {
	Repo    MemeStore
	Mutator *feedsync.Mutator
}

// Toggle godoc
// @Summary Toggle the caller's like on a meme
// @Param   id path string true "meme id"
// @Success 200 {object} dto.LikeResp
// @Security BearerAuth
// @Router  /api/memes/{id}/like [post]
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	m, err := h.Repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mutationError(c, err)
	}

	liked, err := h.Mutator.ToggleLike(c.Context(), &m, user)
	if err != nil {
		return mutationError(c, err)
	}

	return c.JSON(dto.LikeResp{Liked: liked, LikeCount: m.LikeCount()})
}
