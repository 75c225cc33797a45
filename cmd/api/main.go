package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/course-gateway/internal/api/http"
	"github.com/spec-kit/course-gateway/internal/api/http/handlers"
	"github.com/spec-kit/course-gateway/internal/config"
	"github.com/spec-kit/course-gateway/internal/observability"
	"github.com/spec-kit/course-gateway/internal/service"
	"github.com/spec-kit/course-gateway/internal/session"
	"github.com/spec-kit/course-gateway/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store := supabase.NewFactory(cfg.Supabase)
	coursesService := service.NewCoursesService(store)
	cookies := session.Options(cfg.App.Production())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:    handlers.NewAuthHandler(store, cfg.App.URL, cookies),
		Courses: handlers.NewCoursesHandler(coursesService),
	})

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.App.Addr()),
			zap.Strings("cors_origins", cfg.CORS.Origins),
		)
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
