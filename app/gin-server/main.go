package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mkravets/devfolio/config"
	"github.com/mkravets/devfolio/internal/api/handlers"
	"github.com/mkravets/devfolio/internal/api/middleware"
	"github.com/mkravets/devfolio/internal/api/routes"
	"github.com/mkravets/devfolio/internal/cache"
	"github.com/mkravets/devfolio/internal/logger"
	mongorepo "github.com/mkravets/devfolio/internal/repositories/mongo"
	"github.com/mkravets/devfolio/internal/services"
	"github.com/mkravets/devfolio/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New()

	client, err := config.ConnectMongo(cfg)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	db := client.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(db); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	var profileCache cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedis(cfg)
		if err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		profileCache = cache.NewRedisCache(rdb)
		l.Info("Redis connected")
	} else {
		l.Warn("REDIS_ADDR not set, profile cache disabled")
	}

	signer := token.NewSigner(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongorepo.NewUserRepo(db)
	profileRepo := mongorepo.NewProfileRepo(db)

	authSvc := services.NewAuthService(userRepo, signer)
	profileSvc := services.NewProfileService(profileRepo, userRepo, profileCache)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Signer:  signer,
		Auth:    handlers.NewAuthHandler(authSvc),
		Profile: handlers.NewProfileHandler(profileSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
