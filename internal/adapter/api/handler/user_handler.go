package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dorakingdom/internal/usecase"
	"dorakingdom/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// SyncUser creates or refreshes the caller's user document from the
// identity provider snapshot.
func (h *UserHandler) SyncUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.SyncUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *UserHandler) CheckIn(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.userUseCase.DailyCheckIn(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *UserHandler) Leaderboard(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.userUseCase.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
