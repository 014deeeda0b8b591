package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mkravets/devfolio/internal/api/handlers"
	"github.com/mkravets/devfolio/internal/api/middleware"
	"github.com/mkravets/devfolio/internal/token"
)

type Deps struct {
	Signer  *token.Signer
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := middleware.JWTAuth(d.Signer)

	users := r.Group("/api/users")
	users.POST("/register", d.Auth.Register)
	users.POST("/login", d.Auth.Login)
	users.GET("/current", auth, d.Auth.Current)

	profile := r.Group("/api/profile")
	profile.GET("/test", d.Profile.Test)
	profile.GET("/all", d.Profile.All)
	profile.GET("/handle/:handle", d.Profile.ByHandle)
	profile.GET("/user/:user_id", d.Profile.ByUserID)

	profile.GET("", auth, d.Profile.Mine)
	profile.POST("", auth, d.Profile.Save)
	profile.POST("/experience", auth, d.Profile.AddExperience)
	profile.POST("/education", auth, d.Profile.AddEducation)
	profile.DELETE("/experience/:exp_id", auth, d.Profile.DeleteExperience)
	profile.DELETE("/education/:edu_id", auth, d.Profile.DeleteEducation)
	profile.DELETE("", auth, d.Profile.DeleteAccount)
}
