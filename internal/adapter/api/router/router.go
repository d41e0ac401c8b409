package router

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupUserRouter(e, authMiddleware)
	SetupMissionRouter(e, authMiddleware)
	SetupAssistRouter(e, authMiddleware, rateLimitMiddleware)
	SetupHealthRouter(e)
}
