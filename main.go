package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/revisaai/revisaai/handlers"
	"github.com/revisaai/revisaai/internal/config"
	"github.com/revisaai/revisaai/internal/database"
	"github.com/revisaai/revisaai/internal/oidc"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/storage"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/internal/tokens"
	"github.com/revisaai/revisaai/pkg/logger"
	"github.com/revisaai/revisaai/pkg/metrics"
	"github.com/revisaai/revisaai/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v oidc=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.OIDC.Issuer != "", cfg.MinIO.Endpoint != "")
	if cfg.JWT.Secret == "" {
		logger.Fatalf("JWT_SECRET is required to run the API")
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	ctx := context.Background()

	// Redis first so the rate limiter and the token denylist can use it
	var rdb *redis.Client
	var denylist *session.RedisDenylist
	if cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err == nil {
			rdb = client
			denylist = session.NewRedisDenylist(rdb)
			logger.Infof("connected to Redis at %s", cfg.Redis.Addr())
		} else {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr(), err)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("rate limiter enabled: rps=%v burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.UseRedis && rdb != nil)
	}

	// Stores: MongoDB when reachable, in-memory otherwise
	var stores *store.Set
	mongoOK := false
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
		if err != nil {
			logger.Warnf("%v; using in-memory stores", err)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			stores, err = store.NewMongoSet(ctx, client.Database(cfg.MongoDB.Database))
			if err != nil {
				logger.Fatalf("mongo stores: %v", err)
			}
			mongoOK = true
			logger.Infof("using MongoDB database %q", cfg.MongoDB.Database)
		}
	}
	if stores == nil {
		stores, err = store.NewMemorySet(store.WithLatency(cfg.API.MockLatency))
		if err != nil {
			logger.Fatalf("memory stores: %v", err)
		}
	}

	// Locally issued tokens, plus an external OIDC provider when configured
	verifier := middleware.AnyVerifier{tokens.NewVerifier(cfg.JWT.Secret)}
	oidcOK := true
	if cfg.OIDC.Issuer != "" {
		ver, err := oidc.NewVerifier(ctx, cfg.OIDC)
		if err != nil {
			oidcOK = false
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = append(verifier, ver)
		}
	}

	var avatars handlers.AvatarStore
	var minioStore *storage.MinIOStorage
	if cfg.MinIO.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("avatar uploads disabled: %v", err)
		} else {
			minioStore = ms
			avatars = ms
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only when every configured dependency is usable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"mongo": cfg.MongoDB.URI == "" || mongoOK,
			"redis": cfg.Redis.Host == "" || rdb != nil,
			"oidc":  oidcOK,
			"minio": cfg.MinIO.Endpoint == "" || (minioStore != nil && minioStore.Ping(c.Request.Context()) == nil),
		}
		ready := true
		for _, ok := range deps {
			ready = ready && ok
		}
		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterRoutes(r, handlers.Deps{
		Config:   cfg,
		Stores:   stores,
		Verifier: verifier,
		Denylist: denylist,
		Avatars:  avatars,
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("starting RevisaAí API on %s (mongo=%v redis=%v)", addr, mongoOK, rdb != nil)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server failed: %v", err)
	}
}
