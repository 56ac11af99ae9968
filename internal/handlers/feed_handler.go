package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"memeshare/configs"
	"memeshare/dto"
	"memeshare/internal/feedsync"
	"memeshare/internal/repository"
	"memeshare/model"
)

// MemeLister is the read side of the store the feed endpoints need.
type MemeLister interface {
	List(ctx context.Context, opts repository.ListOptions) ([]model.Meme, *string, error)
	ListTrending(ctx context.Context, limit int64) ([]model.Meme, error)
}

// FeedHandler serves the explore, trending and profile feeds. The trending
// view is held as a short-lived local collection subscribed to the deletion
// notifier, so a meme deleted through any handler disappears from the cached
// trending page without a re-read.
type FeedHandler struct {
	Repo MemeLister
	TTL  time.Duration

	mu        sync.Mutex
	trending  *feedsync.Feed
	fetchedAt time.Time
}

func NewFeedHandler(repo MemeLister, notifier *feedsync.Notifier) *FeedHandler {
	h := &FeedHandler{Repo: repo, TTL: 30 * time.Second}
	notifier.Subscribe(h.dropDeleted)
	return h
}

func (h *FeedHandler) dropDeleted(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.trending != nil {
		h.trending.Remove(id)
	}
}

// Explore godoc
// @Summary List memes, newest first
// @Param   limit  query int    false "page size"
// @Param   cursor query string false "opaque cursor"
// @Success 200 {object} dto.ListMemesResp
// @Router  /api/memes [get]
func (h *FeedHandler) Explore(c *fiber.Ctx) error {
	opts := repository.ListOptions{
		Limit:  int64(c.QueryInt("limit", 0)),
		Cursor: c.Query("cursor"),
	}

	items, next, err := h.Repo.List(c.Context(), opts)
	if err != nil {
		return listError(c, err)
	}

	return c.JSON(dto.ListMemesResp{Items: items, NextCursor: next})
}

// Trending godoc
// @Summary List memes ordered by like count
// @Param   limit query int false "page size"
// @Success 200 {object} dto.ListMemesResp
// @Router  /api/memes/trending [get]
func (h *FeedHandler) Trending(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", configs.DefaultLimitMemes)
	if limit <= 0 {
		limit = configs.DefaultLimitMemes
	}
	if limit > configs.MaxLimitMemes {
		limit = configs.MaxLimitMemes
	}

	feed, err := h.trendingFeed(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items := feed.Memes()
	if len(items) > limit {
		items = items[:limit]
	}
	return c.JSON(dto.ListMemesResp{Items: items})
}

// ByAuthor godoc
// @Summary List one user's memes, newest first
// @Param   id path string true "author id"
// @Success 200 {object} dto.ListMemesResp
// @Router  /api/users/{id}/memes [get]
func (h *FeedHandler) ByAuthor(c *fiber.Ctx) error {
	opts := repository.ListOptions{
		Limit:    int64(c.QueryInt("limit", 0)),
		Cursor:   c.Query("cursor"),
		AuthorID: c.Params("id"),
	}

	items, next, err := h.Repo.List(c.Context(), opts)
	if err != nil {
		return listError(c, err)
	}

	return c.JSON(dto.ListMemesResp{Items: items, NextCursor: next})
}

// trendingFeed always caches a max-size page; per-request limits are applied
// by slicing, so the first caller's limit cannot pin a smaller page for the
// whole TTL.
func (h *FeedHandler) trendingFeed(ctx context.Context) (*feedsync.Feed, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.trending != nil && time.Since(h.fetchedAt) < h.TTL {
		return h.trending, nil
	}

	items, err := h.Repo.ListTrending(ctx, configs.MaxLimitMemes)
	if err != nil {
		if h.trending != nil {
			// Serve the stale view rather than an empty trending page.
			return h.trending, nil
		}
		return nil, err
	}

	h.trending = feedsync.NewFeed(items)
	h.fetchedAt = time.Now()
	return h.trending, nil
}
