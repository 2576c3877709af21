package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/config"
	"github.com/nyayaai/backend/internal/handler"
	"github.com/nyayaai/backend/internal/middleware"
)

func Setup(
	cfg *config.Config,
	templateHandler *handler.TemplateHandler,
	documentHandler *handler.DocumentHandler,
	enhanceHandler *handler.EnhanceHandler,
	chatHandler *handler.ChatHandler,
	storyHandler *handler.StoryHandler,
	consultationHandler *handler.ConsultationHandler,
	bookmarkHandler *handler.BookmarkHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.List)
			templates.GET("/:slug", templateHandler.Get)
		}

		documents := api.Group("/documents")
		{
			documents.POST("/generate", documentHandler.Generate)
			documents.POST("", documentHandler.Create)
			documents.GET("", documentHandler.List)
			documents.GET("/:id", documentHandler.Get)
			documents.GET("/:id/export", documentHandler.Export)
			documents.DELETE("/:id", documentHandler.Delete)
		}

		api.POST("/enhance-document", enhanceHandler.Enhance)

		chat := api.Group("/chat")
		{
			chat.POST("", chatHandler.Send)
			chat.GET("/sessions", chatHandler.ListSessions)
			chat.GET("/sessions/:id/messages", chatHandler.GetMessages)
		}

		stories := api.Group("/stories")
		{
			stories.POST("", storyHandler.Share)
			stories.GET("", storyHandler.List)
			stories.GET("/mine", storyHandler.ListMine)
			stories.GET("/:id", storyHandler.Get)
		}

		consultations := api.Group("/consultations")
		{
			consultations.POST("", consultationHandler.Book)
			consultations.GET("", consultationHandler.List)
			consultations.GET("/:id", consultationHandler.Get)
			consultations.POST("/:id/cancel", consultationHandler.Cancel)
		}

		bookmarks := api.Group("/bookmarks")
		{
			bookmarks.POST("", bookmarkHandler.Toggle)
			bookmarks.GET("", bookmarkHandler.List)
		}
	}

	return r
}
