package handler

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/usecase"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/response"
	"dorakingdom/pkg/utils"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

type postCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *CommentHandler) PostComment(c echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return response.Error(c, errors.BadRequest("Mission ID is required", nil))
	}

	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	comment, err := h.commentUseCase.PostComment(c.Request().Context(), uid, missionID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return response.Error(c, errors.BadRequest("Mission ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	comments, total, err := h.commentUseCase.ListComments(c.Request().Context(), missionID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, comments, total, pagination.Page, pagination.PageSize)
}
