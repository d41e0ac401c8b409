package router

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/adapter/api/handler"
	"dorakingdom/internal/adapter/api/middleware"
)

func SetupAssistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {

	assistHandler := handler.GetAssistHandler()

	assist := e.Group("/v1/assist")
	assist.Use(authMiddleware.Authenticate)

	assist.POST("/quests", assistHandler.GenerateQuests, rateLimitMiddleware.Limit("generate_quests"))
	assist.POST("/sessions", assistHandler.CreateSession, rateLimitMiddleware.Limit("assist_session"))
	assist.POST("/chat", assistHandler.Chat, rateLimitMiddleware.Limit("assist_chat"))
}
