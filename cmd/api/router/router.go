package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogdeck/cmd/api/auth"
	"blogdeck/cmd/api/handlers"
	"blogdeck/cmd/api/middleware"
	"blogdeck/cmd/api/services"
	"blogdeck/config"
	"blogdeck/db"
	_ "blogdeck/docs"
	"blogdeck/eventbus"
	"blogdeck/moderation"
	"blogdeck/repositories"
)

func New(bus eventbus.EventBus, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongodb": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cfg := config.GetConfig()

	posts := repositories.NewPostRepository(db.Database())
	categories := repositories.NewCategoryRepository(db.Database())
	comments := repositories.NewCommentRepository(db.Database())
	users := repositories.NewUserRepository(db.Database())

	scorer := moderation.NewScorer(cfg.Spam)

	postSvc := services.NewPostAdminService(posts, categories, users, bus, cfg.Admin)
	categorySvc := services.NewCategoryAdminService(categories, posts, bus, cfg.Admin)
	commentSvc := services.NewCommentAdminService(comments, posts, scorer, bus, cfg.Admin)
	userSvc := services.NewUserAdminService(users, bus, cfg.Admin)
	exportSvc := services.NewExportService(posts, comments, cfg.Admin)
	newsSvc := services.NewNewsImportService(posts, bus, cfg.Feeds)
	authSvc := services.NewAuthService(users, jwtManager)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", handlers.LoginHandler(authSvc))
		api.POST("/posts/:id/comments", handlers.CreateCommentHandler(commentSvc))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(authSvc))
	{
		admin.GET("/posts", handlers.AdminListPostsHandler(postSvc))
		admin.POST("/posts", handlers.AdminCreatePostHandler(postSvc))
		admin.DELETE("/posts/:id", handlers.AdminDeletePostHandler(postSvc))
		admin.PATCH("/posts/:id/inline", handlers.AdminInlineEditPostHandler(postSvc))
		admin.POST("/posts/bulk/:action", handlers.AdminBulkPostsHandler(postSvc))
		admin.GET("/posts/export", handlers.AdminExportPostsHandler(exportSvc))

		admin.GET("/categories", handlers.AdminListCategoriesHandler(categorySvc))
		admin.POST("/categories", handlers.AdminCreateCategoryHandler(categorySvc))
		admin.POST("/categories/bulk/:action", handlers.AdminBulkCategoriesHandler(categorySvc))

		admin.GET("/comments", handlers.AdminListCommentsHandler(commentSvc))
		admin.PATCH("/comments/:id/inline", handlers.AdminInlineEditCommentHandler(commentSvc))
		admin.POST("/comments/bulk/:action", handlers.AdminBulkCommentsHandler(commentSvc))
		admin.GET("/comments/export", handlers.AdminExportCommentsHandler(exportSvc))

		admin.GET("/users", handlers.AdminListUsersHandler(userSvc))
		admin.PATCH("/users/:id/inline", handlers.AdminInlineEditUserHandler(userSvc))
		admin.POST("/users/bulk/:action", handlers.AdminBulkUsersHandler(userSvc))

		admin.POST("/news/import", handlers.AdminImportNewsHandler(newsSvc))
	}

	return r
}
