package router

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/adapter/api/handler"
	"dorakingdom/internal/adapter/api/middleware"
)

func SetupMissionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	missionHandler := handler.GetMissionHandler()
	commentHandler := handler.GetCommentHandler()

	// Reads work anonymously but see only public missions
	missions := e.Group("/v1/missions")
	missions.Use(authMiddleware.OptionalAuthenticate)
	missions.GET("", missionHandler.ListMissions)
	missions.GET("/:id", missionHandler.GetMission)
	missions.GET("/:id/comments", commentHandler.ListComments)

	e.GET("/v1/weekly", missionHandler.GetWeeklyMission, authMiddleware.OptionalAuthenticate)

	authed := e.Group("/v1/missions")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", missionHandler.CreateMission)
	authed.POST("/:id/enroll", missionHandler.Enroll)
	authed.GET("/:id/progress", missionHandler.GetProgress)
	authed.POST("/:id/quests/:questKey/toggle", missionHandler.ToggleQuest)
	authed.POST("/:id/comments", commentHandler.PostComment)
}
