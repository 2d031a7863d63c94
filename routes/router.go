package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/config"
	"github.com/cppla/inkpost/controllers"
	_ "github.com/cppla/inkpost/docs"
	"github.com/cppla/inkpost/middleware"
	"github.com/cppla/inkpost/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, lg *zap.Logger, deps controllers.Deps) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestContext(lg))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.TransactionIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.TransactionIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	userController := controllers.NewUserController(deps)
	articleController := controllers.NewArticleController(deps)
	likeController := controllers.NewLikeController(deps)
	statsController := controllers.NewStatsController(deps)

	authRequired := middleware.AuthRequired(deps.Tokens, deps.Blacklist)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	v1 := r.Group("/v1")
	v1.GET("/health", func(ctx *gin.Context) {
		utils.OK(ctx, gin.H{"status": "ok"})
	})
	v1.GET("/api-docs", func(ctx *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			utils.Internal(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
	v1.GET("/stats", statsController.GetStats)

	users := v1.Group("/users")
	users.POST("/register", userController.Register)
	users.POST("/login", loginLimiter.Middleware(), userController.Login)
	users.POST("/logout", authRequired, userController.Logout)
	users.GET("/me", authRequired, userController.Me)
	users.GET("", userController.ListUsers)
	users.GET("/articles", articleController.ListArticles)

	users.GET("/:userId", userController.GetUser)
	users.PUT("/:userId", userController.UpdateUser)
	users.DELETE("/:userId", userController.DeleteUser)

	users.POST("/:userId/followers", userController.Follow)
	users.GET("/:userId/followers", userController.ListFollowers)
	users.GET("/:userId/following", userController.ListFollowing)
	users.DELETE("/:userId/followers/:followerId", userController.Unfollow)

	users.POST("/:userId/articles", articleController.CreateArticle)
	users.GET("/:userId/articles", articleController.ListUserArticles)
	users.GET("/:userId/articles/:articleId", articleController.GetArticle)
	users.PUT("/:userId/articles/:articleId", articleController.UpdateArticle)
	users.DELETE("/:userId/articles/:articleId", articleController.DeleteArticle)
	users.GET("/:userId/favorites", articleController.ListFavorites)

	users.POST("/:userId/articles/:articleId/like", likeController.Like)
	users.GET("/:userId/articles/:articleId/like", likeController.CheckLike)
	users.DELETE("/:userId/articles/:articleId/like", likeController.Unlike)

	r.NoRoute(func(ctx *gin.Context) {
		utils.NotFound(ctx, utils.CodeNotFound, "route not found")
	})

	return r
}
