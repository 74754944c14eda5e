package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/config"
)

func runAuthRouter(api, secure *echo.Group, authService services.AuthServiceInterface, session config.SessionConfig, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, session, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
	}

	secureAuth := secure.Group("/auth")
	{
		secureAuth.GET("/user", authCtrl.Me)
		secureAuth.PUT("/profile", authCtrl.UpdateProfile)
		secureAuth.PUT("/change-password", authCtrl.ChangePassword)
		secureAuth.POST("/logout", authCtrl.Logout)
		secureAuth.POST("/logout-other-sessions", authCtrl.LogoutOtherSessions)
	}
}
