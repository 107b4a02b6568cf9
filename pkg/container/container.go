package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"postboard-backend/internal/config"
	infraCache "postboard-backend/internal/infrastructure/cache"
	"postboard-backend/internal/infrastructure/database"
	"postboard-backend/internal/infrastructure/storage"
	"postboard-backend/pkg/cache"
	"postboard-backend/pkg/jwt"

	commentHandler "postboard-backend/internal/domains/comment/handler"
	commentRepo "postboard-backend/internal/domains/comment/repository"
	commentService "postboard-backend/internal/domains/comment/service"
	feedHandler "postboard-backend/internal/domains/feed/handler"
	feedService "postboard-backend/internal/domains/feed/service"
	followHandler "postboard-backend/internal/domains/follow/handler"
	followRepo "postboard-backend/internal/domains/follow/repository"
	followService "postboard-backend/internal/domains/follow/service"
	groupHandler "postboard-backend/internal/domains/group/handler"
	groupRepo "postboard-backend/internal/domains/group/repository"
	groupService "postboard-backend/internal/domains/group/service"
	postHandler "postboard-backend/internal/domains/post/handler"
	postRepo "postboard-backend/internal/domains/post/repository"
	postService "postboard-backend/internal/domains/post/service"
	userHandler "postboard-backend/internal/domains/user/handler"
	userRepo "postboard-backend/internal/domains/user/repository"
	userService "postboard-backend/internal/domains/user/service"
)

// Container holds every shared dependency of the application.
// It is the root of the dependency graph; everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    userRepo.UserRepository
	GroupRepo   groupRepo.GroupRepository
	PostRepo    postRepo.PostRepository
	CommentRepo commentRepo.CommentRepository
	FollowRepo  followRepo.FollowRepository

	// Services
	UserService    userService.UserService
	GroupService   groupService.GroupService
	PostService    postService.PostService
	CommentService commentService.CommentService
	FollowService  followService.FollowService
	FeedService    feedService.FeedService

	// Handlers
	UserHandler    *userHandler.UserHandler
	GroupHandler   *groupHandler.GroupHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	FollowHandler  *followHandler.FollowHandler
	FeedHandler    *feedHandler.FeedHandler
}

// NewContainer builds the full dependency graph in order:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("config loaded (environment: %s)", cfg.App.Environment)

	// Step 2: database.
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	log.Println("database connected and migrated")

	// Step 3: cache. Redis being down is not fatal; the feed falls
	// back to building every page from the database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("redis connection failed (non-critical): %v", err)
		} else {
			log.Println("redis connected")
		}
	}
	c.Cache = redisCache

	// Step 4: object storage and image processing.
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage
	c.Images = storage.NewImageProcessor()
	log.Println("object storage ready")

	// Step 5: JWT.
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.GroupRepo = groupRepo.NewPostgresGroupRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.FollowRepo = followRepo.NewPostgresFollowRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.GroupService = groupService.NewGroupService(c.GroupRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.GroupRepo, c.Storage, c.Images)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo)
	c.FollowService = followService.NewFollowService(c.FollowRepo, c.UserRepo)
	c.FeedService = feedService.NewFeedService(
		c.PostRepo,
		c.GroupRepo,
		c.UserRepo,
		c.FollowRepo,
		c.Cache,
		c.Config.Feed.PageSize,
		c.Config.Feed.HomeCacheTTL,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CommentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)
	c.FeedHandler = feedHandler.NewFeedHandler(c.FeedService)
}

// Cleanup releases infrastructure resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("failed to close redis: %v", err)
			} else {
				log.Println("redis connections closed")
			}
		}
	}
}
