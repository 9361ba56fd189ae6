package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	_ "travelquote/api" // swagger docs
	"travelquote/cfg"
	"travelquote/internal/middleware"
	"travelquote/internal/quote"
	"travelquote/pkg/cache"
	"travelquote/pkg/db"
	"travelquote/pkg/idgen"
	"travelquote/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Quote Workspace API
// @version         1.0
// @description     Conflict detection, quote scoring and predictive bundling for the agent quote workspace.
// @BasePath        /
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)
	fatal := func(msg string, err error) {
		zlogger.Error(msg, logger.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ============
	// Otel
	// ============
	if config.Observability.Enabled() {
		shutdownOtel, err := initOtel(ctx, &config.Observability, zlogger)
		if err != nil {
			fatal("failed to initialize OpenTelemetry", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown OpenTelemetry", logger.Err(err))
			}
		}()
	} else {
		zlogger.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, telemetry disabled")
	}

	metrics, err := quote.NewMetrics(otel.GetMeterProvider().Meter("travelquote/quote"))
	if err != nil {
		fatal("failed to create metrics", err)
	}

	// ============
	// Cache
	// ============
	var scoreCache cache.Cache
	switch config.Cache.Driver {
	case cfg.CacheDriverRedis:
		scoreCache, err = cache.NewRedisCache(ctx, config.Redis.Addr(), config.Redis.Password)
		if err != nil {
			fatal("failed to connect to redis", err)
		}
	default:
		scoreCache = cache.NewMemoryCache(config.Cache.TTL(), 2*config.Cache.TTL())
	}
	defer scoreCache.Close()
	zlogger.Info("score cache ready", logger.Field{Key: "driver", Value: config.Cache.Driver})

	// ============
	// Postgres + migrations
	// ============
	var snapshots quote.ScoreRepository
	if pg := config.Postgres; pg.Enabled() {
		pgDSN := db.PostgresDSN(pg.User, pg.Password, pg.Host, pg.Port, pg.DBName, pg.SSLMode)

		if err := db.Migrate(pg.MigrationsPath, pgDSN); err != nil {
			fatal("failed to migrate database", err)
		}

		client, err := db.NewSQLClient(ctx, "postgres", pgDSN)
		if err != nil {
			fatal("failed to connect to postgres", err)
		}
		defer client.Close()
		snapshots = quote.NewScoreRepository(client)
	} else {
		zlogger.Info("POSTGRES_HOST not set, score history disabled")
	}

	// ============
	// Services
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		fatal("failed to create id generator", err)
	}

	service := quote.NewService(scoreCache, snapshots, ids, zlogger, metrics, quote.Config{
		CacheTTL:      config.Cache.TTL(),
		TickInterval:  config.Suggestions.TickInterval(),
		DefaultSnooze: config.Suggestions.DefaultSnooze(),
		MaxVisible:    config.Suggestions.MaxVisible,
		IdleTimeout:   config.Suggestions.IdleTimeout(),
	})
	defer service.CloseAll()

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if config.Observability.Enabled() {
		r.Use(otelgin.Middleware(config.Observability.ServiceName))
	}
	r.Use(middleware.TraceLoggerMiddleware(zlogger))
	r.Use(middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst).Limit())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"workspaces": service.OpenWorkspaces(),
		})
	})
	initSwagger(r)

	quote.NewQuoteHandler(service, zlogger).RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + config.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlogger.Info("http server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlogger.Error("http server failed", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("failed to shutdown http server", logger.Err(err))
	}
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
    <title>Quote Workspace API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
	})
}
