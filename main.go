package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"memeshare/bootstrap"
	"memeshare/configs"
	"memeshare/database"
	_ "memeshare/docs"
	"memeshare/internal/feedsync"
	"memeshare/internal/handlers"
	"memeshare/internal/media"
	"memeshare/internal/middleware"
	"memeshare/internal/repository"
	"memeshare/internal/routes"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// --- MongoDB Connection ---
	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Cloudinary ---
	cld, err := media.New(cfg.CloudinaryURL, logger)
	if err != nil {
		log.Fatal(err)
	}

	// --- Core wiring ---
	repo := repository.NewMemeRepository(db, logger)
	notifier := feedsync.NewNotifier()
	mutator := feedsync.NewMutator(repo, cld, notifier, logger)

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUser(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Feed:    handlers.NewFeedHandler(repo, notifier),
		Meme:    &handlers.MemeHandler{Repo: repo, Media: cld, Mutator: mutator},
		Like:    &handlers.LikeHandler{Repo: repo, Mutator: mutator},
		Comment: &handlers.CommentHandler{Repo: repo, Mutator: mutator},
	})

	logger.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
