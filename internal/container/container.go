package container

import (
	"context"

	"github.com/jramir7254/phishing-backend/internal/config"
	"github.com/jramir7254/phishing-backend/internal/repository"
	"github.com/jramir7254/phishing-backend/internal/seed"
	"github.com/jramir7254/phishing-backend/internal/service"
	"github.com/jramir7254/phishing-backend/internal/service/auth"
	"github.com/jramir7254/phishing-backend/pkg/database"
	"github.com/jramir7254/phishing-backend/pkg/logger"
	"github.com/jramir7254/phishing-backend/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *database.PostgresDB
	RedisClient *redis.Client

	AuthService  service.AuthService
	GameService  *service.GameService
	AdminService *service.AdminService
	GameData     repository.GameDataRepository
}

// New creates a new dependency injection container. Redis is optional:
// when the URL is missing or the connection fails, the application runs
// with caching disabled.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	teamRepo := repository.NewTeamRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	gameDataRepo := repository.NewGameDataRepository(db)

	cacheService := service.NewCacheService(redisClient, log.Logger)
	authService := auth.NewService(cfg.JWTSecret, cfg.AdminCode, teamRepo, log)
	gameService := service.NewGameService(attemptRepo, teamRepo, cacheService, cfg.CompletionThreshold, log.Logger)
	adminService := service.NewAdminService(teamRepo, gameDataRepo, cacheService, seed.Emails(), log.Logger)

	return &Container{
		Config:       cfg,
		Logger:       log,
		DB:           db,
		RedisClient:  redisClient,
		AuthService:  authService,
		GameService:  gameService,
		AdminService: adminService,
		GameData:     gameDataRepo,
	}, nil
}

// HasRedis returns true if the Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
