package handlers

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"memeshare/configs"
	"memeshare/internal/authctx"
	"memeshare/internal/feedsync"
	"memeshare/internal/media"
	"memeshare/model"
)

// MemeStore is the document side of the store the meme endpoints need.
type MemeStore interface {
	Get(ctx context.Context, id string) (model.Meme, error)
	Insert(ctx context.Context, m model.Meme) (string, error)
}

// Uploader is the Media Store's upload half.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (media.UploadResult, error)
}

type MemeHandler struct {
	Repo    MemeStore
	Media   Uploader
	Mutator *feedsync.Mutator
}

func nowMillis() int64 { return time.Now().UnixMilli() }

// GetOne godoc
// @Summary Fetch a single meme
// @Param   id path string true "meme id"
// @Success 200 {object} model.Meme
// @Router  /api/memes/{id} [get]
func (h *MemeHandler) GetOne(c *fiber.Ctx) error {
	m, err := h.Repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(m)
}

// Create godoc
// @Summary Upload a meme
// @Accept  multipart/form-data
// @Param   title formData string true "meme title"
// @Param   image formData file   true "image file"
// @Success 201 {object} model.Meme
// @Security BearerAuth
// @Router  /api/memes [post]
func (h *MemeHandler) Create(c *fiber.Ctx) error {
	user, ok := authctx.UserFrom(c)
	if !ok {
		return mutationError(c, feedsync.ErrUnauthenticated)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image is required"})
	}
	if fh.Size > configs.MaxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "image too large"})
	}

	file, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable image"})
	}
	defer file.Close()

	// The image goes up first. The document below is only ever created with a
	// media reference that actually exists.
	up, err := h.Media.Upload(c.Context(), file)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "image upload failed"})
	}

	name := user.DisplayName
	if name == "" {
		name = "Anonymous"
	}
	m := model.Meme{
		PublicID:   up.PublicID,
		ImageURL:   up.URL,
		Title:      title,
		AuthorID:   user.ID,
		AuthorName: name,
		Likes:      []string{},
		Comments:   []model.Comment{},
		CreatedAt:  nowMillis(),
	}

	id, err := h.Repo.Insert(c.Context(), m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if oid, oerr := bson.ObjectIDFromHex(id); oerr == nil {
		m.ID = oid
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Delete godoc
// @Summary Delete a meme (author only)
// @Param   id path string true "meme id"
// @Success 204
// @Security BearerAuth
// @Router  /api/memes/{id} [delete]
func (h *MemeHandler) Delete(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	m, err := h.Repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mutationError(c, err)
	}

	if err := h.Mutator.DeleteMeme(c.Context(), nil, &m, user); err != nil {
		return mutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
