package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
	"postboard-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupFeedRoutes(v1, c)
		setupGroupRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupProfileRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		// GET is where RequireLogin redirects land; POST authenticates.
		auth.GET("/login", c.UserHandler.LoginPrompt)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
	}

	users := v1.Group("/users")
	users.Use(middleware.RequireAuth(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Me)
	}
}

func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/feed", c.FeedHandler.Home)
	v1.DELETE("/feed/cache", middleware.RequireAuth(c.JWTManager), c.FeedHandler.ClearCache)

	// The followed-authors feed is a browser flow: anonymous viewers
	// get redirected to login instead of a bare 401.
	v1.GET("/follow", middleware.RequireLogin(c.JWTManager), c.FeedHandler.Followed)
}

func setupGroupRoutes(v1 *gin.RouterGroup, c *container.Container) {
	groups := v1.Group("/groups")
	{
		groups.GET("", c.GroupHandler.List)
		groups.GET("/:slug", c.FeedHandler.Group)
		groups.POST("", middleware.RequireAuth(c.JWTManager), c.GroupHandler.Create)
		groups.DELETE("/:slug", middleware.RequireAuth(c.JWTManager), c.GroupHandler.Delete)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("/:id", middleware.OptionalAuth(c.JWTManager), c.PostHandler.Detail)
		posts.POST("", middleware.RequireLogin(c.JWTManager), c.PostHandler.Create)
		posts.PUT("/:id", middleware.RequireLogin(c.JWTManager), c.PostHandler.Edit)
		posts.POST("/:id/comments", middleware.RequireLogin(c.JWTManager), c.CommentHandler.Add)
	}
}

func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container) {
	profiles := v1.Group("/profiles")
	{
		profiles.GET("/:username", middleware.OptionalAuth(c.JWTManager), c.FeedHandler.Profile)
		profiles.POST("/:username/follow", middleware.RequireLogin(c.JWTManager), c.FollowHandler.Follow)
		profiles.POST("/:username/unfollow", middleware.RequireLogin(c.JWTManager), c.FollowHandler.Unfollow)
	}
}

// healthCheckHandler reports database and cache reachability.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Cache being down degrades the home feed but does not take
			// the service down.
			cacheStatus = "unreachable"
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
