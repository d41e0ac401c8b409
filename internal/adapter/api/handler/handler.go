package handler

import (
	"dorakingdom/internal/usecase"
)

var (
	userHandler    *UserHandler
	missionHandler *MissionHandler
	commentHandler *CommentHandler
	assistHandler  *AssistHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	missionUseCase *usecase.MissionUseCase,
	commentUseCase *usecase.CommentUseCase,
	assistUseCase *usecase.AssistUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	missionHandler = NewMissionHandler(missionUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
	assistHandler = NewAssistHandler(assistUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetMissionHandler() *MissionHandler {
	return missionHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}

func GetAssistHandler() *AssistHandler {
	return assistHandler
}
