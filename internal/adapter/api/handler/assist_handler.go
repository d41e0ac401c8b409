package handler

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/usecase"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/response"
)

type AssistHandler struct {
	assistUseCase *usecase.AssistUseCase
}

func NewAssistHandler(assistUseCase *usecase.AssistUseCase) *AssistHandler {
	return &AssistHandler{
		assistUseCase: assistUseCase,
	}
}

type generateQuestsRequest struct {
	Description string `json:"description" validate:"required"`
}

func (h *AssistHandler) GenerateQuests(c echo.Context) error {
	var req generateQuestsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quests, err := h.assistUseCase.GenerateQuests(c.Request().Context(), req.Description)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"quests": quests,
	})
}

type createSessionRequest struct {
	PDFText string `json:"pdfText,omitempty"`
}

func (h *AssistHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	sessionID, err := h.assistUseCase.CreateSession(c.Request().Context(), req.PDFText)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"sessionId": sessionID,
	})
}

type chatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message" validate:"required"`
}

func (h *AssistHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistUseCase.Chat(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"reply": reply,
	})
}
