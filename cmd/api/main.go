package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"formportal/docs"
	"formportal/internal/cache"
	"formportal/internal/config"
	"formportal/internal/database"
	"formportal/internal/database/migration"
	handlers "formportal/internal/http/handler"
	"formportal/internal/http/middleware"
	"formportal/internal/logger"
	"formportal/internal/otel"
	"formportal/internal/render"
	"formportal/internal/repository/postgres"
	"formportal/internal/service"
	"formportal/internal/storage"
	"formportal/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// @title Form Portal API
// @version 1.0
// @description Register form schemas, render them as HTML and collect submissions.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "formportal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := logger.LoadLocation(cfg.Log.Timezone)
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, loc)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	schemaCache, closeCache := newSchemaCache(ctx, cfg.Redis, log)
	defer closeCache()

	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
		log.Info("export storage enabled", zap.String("endpoint", cfg.MinIO.Endpoint), zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		log.Info("export storage disabled")
	}

	validator, err := validation.New()
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}
	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	formSvc := service.NewFormService(service.FormServiceDeps{
		Schemas:      postgres.NewFormSchemaPostgres(db),
		Responses:    postgres.NewFormResponsePostgres(db),
		Renderer:     renderer,
		Cache:        schemaCache,
		Store:        objStore,
		Logger:       log.Named("service"),
		ExportURLTTL: time.Duration(cfg.MinIO.URLExpirySec) * time.Second,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "formportal",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log.Named("http")))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        db,
		Forms:     formSvc,
		Validator: validator,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.Addr()))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Warn("http shutdown failed", zap.Error(err))
	}
	return nil
}

// newSchemaCache connects to Redis when configured. An unreachable Redis at
// startup disables the cache instead of failing the process.
func newSchemaCache(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (cache.SchemaCache, func()) {
	if cfg.Address == "" {
		log.Info("schema cache disabled")
		return cache.Noop{}, func() {}
	}

	c := cache.NewRedisSchemaCache(cache.NewRedisClient(cfg), time.Duration(cfg.TTLSec)*time.Second)
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pctx); err != nil {
		log.Warn("schema cache unreachable, continuing without it", zap.String("addr", cfg.Address), zap.Error(err))
		_ = c.Close()
		return cache.Noop{}, func() {}
	}

	log.Info("schema cache enabled", zap.String("addr", cfg.Address), zap.Int("ttl_sec", cfg.TTLSec))
	return c, func() { _ = c.Close() }
}
