package handler

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/usecase"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/response"
	"dorakingdom/pkg/utils"
)

type MissionHandler struct {
	missionUseCase *usecase.MissionUseCase
}

func NewMissionHandler(missionUseCase *usecase.MissionUseCase) *MissionHandler {
	return &MissionHandler{
		missionUseCase: missionUseCase,
	}
}

type createMissionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Emoji       string   `json:"emoji,omitempty"`
	IsPrivate   bool     `json:"isPrivate"`
	Quests      []string `json:"quests" validate:"required,min=3,max=5,dive,required"`
}

func (h *MissionHandler) CreateMission(c echo.Context) error {
	var req createMissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	mission, err := h.missionUseCase.CreateMission(c.Request().Context(), uid, usecase.CreateMissionInput{
		Title:       req.Title,
		Description: req.Description,
		Emoji:       req.Emoji,
		IsPrivate:   req.IsPrivate,
		Quests:      req.Quests,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, mission)
}

func (h *MissionHandler) GetMission(c echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return response.Error(c, errors.BadRequest("Mission ID is required", nil))
	}

	viewerID, _ := c.Get("uid").(string)

	mission, err := h.missionUseCase.GetMission(c.Request().Context(), viewerID, missionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, mission)
}

func (h *MissionHandler) ListMissions(c echo.Context) error {
	viewerID, _ := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	missions, total, err := h.missionUseCase.ListMissions(c.Request().Context(), viewerID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, missions, total, pagination.Page, pagination.PageSize)
}

func (h *MissionHandler) GetWeeklyMission(c echo.Context) error {
	mission, err := h.missionUseCase.GetWeeklyMission(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, mission)
}

func (h *MissionHandler) Enroll(c echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return response.Error(c, errors.BadRequest("Mission ID is required", nil))
	}

	uid := c.Get("uid").(string)

	enrollment, err := h.missionUseCase.Enroll(c.Request().Context(), uid, missionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, enrollment)
}

func (h *MissionHandler) GetProgress(c echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return response.Error(c, errors.BadRequest("Mission ID is required", nil))
	}

	uid := c.Get("uid").(string)

	enrollment, err := h.missionUseCase.GetProgress(c.Request().Context(), uid, missionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, enrollment)
}

func (h *MissionHandler) ToggleQuest(c echo.Context) error {
	missionID := c.Param("id")
	questKey := c.Param("questKey")
	if missionID == "" || questKey == "" {
		return response.Error(c, errors.BadRequest("Mission ID and quest key are required", nil))
	}

	uid := c.Get("uid").(string)

	result, err := h.missionUseCase.ToggleQuest(c.Request().Context(), uid, missionID, questKey)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
