package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"sharehub/internal/api"
	"sharehub/internal/auth"
	"sharehub/internal/cache"
	"sharehub/internal/config"
	"sharehub/internal/handler"
	"sharehub/internal/repository"
	"sharehub/internal/router"
	"sharehub/internal/service"
	"sharehub/internal/upload"
	"sharehub/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	if cfg.UsesDefaultSessionSecret() {
		log.Printf("Warning: SESSION_SECRET is not set, flash cookies are signed with the public default")
	}

	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "sharehub:")
	defer cacheClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(ctx); err != nil {
		log.Printf("Warning: redis unavailable at %s, picture retry disabled: %v", cfg.RedisAddr, err)
	}
	cancel()

	// Initialize repositories
	backend := api.New(cfg.APIBaseURL, cfg.APITimeout)
	authRepo := repository.NewAuthRepository(backend)
	postRepo := repository.NewPostRepository(backend)
	userRepo := repository.NewUserRepository(backend)
	listRepo := repository.NewMaterialListRepository(backend)

	pending := upload.NewPendingStore(cacheClient, cfg.PendingUploadTTL)

	// Initialize services
	authService := service.NewAuthService(authRepo)
	postService := service.NewPostService(postRepo, pending)
	userService := service.NewUserService(userRepo, postRepo)
	listService := service.NewMaterialListService(listRepo)

	// Initialize handlers
	pages := handler.NewPages(
		handler.NewFlashes(cfg.SessionSecret, cfg.CookieSecure),
		auth.CookieOptions{Secure: cfg.CookieSecure},
	)
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(pages, authService),
		Posts:         handler.NewPostHandler(pages, postService),
		Users:         handler.NewUserHandler(pages, userService),
		MaterialLists: handler.NewMaterialListHandler(pages, listService),
	}

	// Register routes
	if err := router.Register(e, handlers); err != nil {
		log.Fatalf("router: %v", err)
	}

	log.Printf("Sharehub web listening on :%s, backend %s", cfg.ServerPort, cfg.APIBaseURL)
	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
