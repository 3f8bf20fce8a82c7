package server

import (
	"net/http"
	"time"

	"video-uploader/domain/repository"
	httpHandler "video-uploader/interfaces/http"
	"video-uploader/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	authHandler httpHandler.IAuthHandler,
	videoHandler httpHandler.IVideoHandler,
	uploadHandler httpHandler.IUploadHandler,
	credentials repository.ICredential,
	corsOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Redirect"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", authHandler.Login)
	router.POST("/signup", authHandler.Signup)
	router.POST("/logout", authHandler.Logout)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth(credentials))

	api.GET("/videos", videoHandler.ListVideos)
	api.POST("/videos/upload", uploadHandler.Upload)
	api.POST("/videos/upload/close", uploadHandler.Close)
	api.GET("/videos/:videoId/download", videoHandler.Download)

	return router
}
