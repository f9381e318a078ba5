package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/handler"
)

// SetupRouter configures the Gin engine and the API route table.
func SetupRouter(api *handler.API, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(allowedOrigins))

	apiGroup := r.Group("/api")
	{
		// Public surface.
		apiGroup.GET("/health", api.Health)
		apiGroup.POST("/contact", api.SubmitContact)
		apiGroup.GET("/personal-info", api.GetPersonalInfo)
		apiGroup.GET("/stages", api.ListStages)
		apiGroup.GET("/stages/:type", api.GetStage)
		apiGroup.GET("/content/:section", api.GetSection)

		// Session endpoints. Verify answers 200 for valid and invalid
		// tokens alike, so it sits outside the guard.
		apiGroup.POST("/admin/login", api.Login)
		apiGroup.POST("/admin/logout", api.Logout)
		apiGroup.GET("/admin/verify", api.VerifySession)

		// Admin-gated writes and mailbox.
		auth := apiGroup.Group("")
		auth.Use(api.RequireAdmin())
		{
			auth.GET("/contacts", api.ListContacts)
			auth.DELETE("/contacts/:id", api.DeleteContact)

			auth.POST("/personal-info", api.PutPersonalInfo)
			auth.POST("/stages/:type", api.PutStage)
			auth.POST("/content/:section", api.PutSection)

			admin := auth.Group("/admin")
			{
				admin.GET("/content", api.AdminContent)
				admin.POST("/personal-info", api.PutPersonalInfo)
				admin.POST("/stages", api.PutStage)
				admin.POST("/content/:section", api.PutSection)
				admin.POST("/upload-image", api.UploadImage)
				admin.GET("/analytics", api.Analytics)
			}
		}
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		// Credentials cannot be combined with a literal wildcard; echo
		// the caller's origin instead.
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}
