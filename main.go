package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/config"
	"github.com/abdulrahman-nisar/UpliftAI/middleware"
	"github.com/abdulrahman-nisar/UpliftAI/routes"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/store"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The record store is built exactly once here and handed to every
	// service; nothing initializes it lazily.
	recordStore, err := newStore(conf)
	if err != nil {
		log.Fatalf("failed to initialize record store: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	svc := routes.Services{
		Users:      services.NewUserService(recordStore),
		Moods:      services.NewMoodService(recordStore),
		Journals:   services.NewJournalService(recordStore),
		Activities: services.NewActivityService(recordStore),
		Content:    services.NewContentService(recordStore),
	}

	if conf.LLMAPIKey != "" {
		client, err := services.NewLLMClient(conf.LLMAPIKey, conf.LLMAPIEndpoint, conf.LLMModel)
		if err != nil {
			log.Fatalf("failed to initialize LLM client: %v", err)
		}
		svc.Coach = services.NewCoachService(client)
	} else {
		config.Logger.Infow("no LLM API key configured, chat route disabled")
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	routes.RegisterRoutes(r, svc)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort, "store", conf.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}

// newStore selects the record store backend from config.
func newStore(conf config.Config) (store.Store, error) {
	switch conf.StoreBackend {
	case "redis":
		return store.NewRedisStore(conf.GetRedisConnString(), conf.RedisPassword, conf.RedisDB)
	case "mysql":
		return store.NewMySQLStore(conf.GetDBConnString())
	default:
		return store.NewMemoryStore(), nil
	}
}
