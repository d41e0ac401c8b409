package router

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/adapter/api/handler"
	"dorakingdom/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	userHandler := handler.GetUserHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.POST("/sync", userHandler.SyncUser)

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetProfile)

	checkin := e.Group("/v1/checkin")
	checkin.Use(authMiddleware.Authenticate)
	checkin.POST("", userHandler.CheckIn)

	// Leaderboard is public
	e.GET("/v1/leaderboard", userHandler.Leaderboard)
}
