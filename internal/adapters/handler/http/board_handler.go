package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
)

type BoardHandler struct {
	svc *services.BoardService
}

func NewBoardHandler(svc *services.BoardService) *BoardHandler {
	return &BoardHandler{
		svc: svc,
	}
}

type createBoardRequest struct {
	Title         string `json:"title" binding:"required"`
	PeriodLength  int    `json:"period_length"`
	Capacity      int    `json:"capacity"`
	DayNameOffset *int   `json:"day_name_offset"`
}

type updateHabitRequest struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
	Version int     `json:"version"`
}

type toggleDayRequest struct {
	Version int `json:"version"`
}

// boardResponse is a board snapshot plus the labels a grid needs to render
// its header.
type boardResponse struct {
	*domain.Board
	Days  []domain.DayLabel `json:"days"`
	Weeks []string          `json:"weeks"`
}

func newBoardResponse(b *domain.Board) boardResponse {
	weeks := make([]string, 0, b.Period.Weeks())
	for w := 1; w <= b.Period.Weeks(); w++ {
		weeks = append(weeks, domain.WeekLabel(w))
	}

	return boardResponse{
		Board: b,
		Days:  b.Period.DayLabels(),
		Weeks: weeks,
	}
}

func (h *BoardHandler) RegisterRoutes(router *gin.RouterGroup) {
	boards := router.Group("/boards")
	{
		boards.POST("", h.Create)
		boards.GET("", h.List)
		boards.GET("/sync", h.Sync)
		boards.GET("/:id", h.Get)
		boards.DELETE("/:id", h.Delete)
		boards.PUT("/:id/habits/:habitId", h.UpdateHabit)
		boards.POST("/:id/habits/:habitId/days/:day/toggle", h.ToggleDay)
	}
}

// Create godoc
// @Summary      Create a board
// @Description  Creates a habit board with an empty completion grid. Omitted fields use the server defaults.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        board  body      createBoardRequest  true  "Board layout"
// @Success      201    {object}  boardResponse
// @Failure      400    {object}  errorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	board, err := h.svc.Create(c.Request.Context(), services.CreateBoardInput{
		Title:         req.Title,
		PeriodLength:  req.PeriodLength,
		Capacity:      req.Capacity,
		DayNameOffset: req.DayNameOffset,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBoardResponse(board))
}

// List godoc
// @Summary  List boards
// @Tags     boards
// @Produce  json
// @Success  200  {array}  boardResponse
// @Router   /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]boardResponse, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, newBoardResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Sync godoc
// @Summary      Boards changed since a timestamp
// @Tags         boards
// @Produce      json
// @Param        last_sync  query     string  false  "RFC3339 timestamp"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  errorResponse
// @Router       /boards/sync [get]
func (h *BoardHandler) Sync(c *gin.Context) {
	var lastSync time.Time

	if raw := c.Query("last_sync"); raw != "" {
		var err error
		lastSync, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid last_sync format, use RFC3339"})
			return
		}
	}

	changes, err := h.svc.GetDelta(c.Request.Context(), lastSync)
	if err != nil {
		handleError(c, err)
		return
	}

	if changes == nil {
		changes = []*domain.Board{}
	}

	c.JSON(http.StatusOK, gin.H{
		"changes":   changes,
		"timestamp": time.Now().UTC(),
	})
}

// Get godoc
// @Summary  Get a board
// @Tags     boards
// @Produce  json
// @Param    id   path      string  true  "Board ID"
// @Success  200  {object}  boardResponse
// @Failure  404  {object}  errorResponse
// @Router   /boards/{id} [get]
func (h *BoardHandler) Get(c *gin.Context) {
	board, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// UpdateHabit godoc
// @Summary      Rename or enable a habit
// @Description  An empty (or whitespace) name deactivates the habit; its marks are kept.
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Board ID"
// @Param        habitId  path      int                 true  "Habit ID"
// @Param        habit    body      updateHabitRequest  true  "Fields to change"
// @Success      200      {object}  boardResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      409      {object}  errorResponse
// @Router       /boards/{id}/habits/{habitId} [put]
func (h *BoardHandler) UpdateHabit(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("habitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "habitId must be an integer"})
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	board, err := h.svc.UpdateHabit(c.Request.Context(), services.UpdateHabitInput{
		BoardID: c.Param("id"),
		HabitID: habitID,
		Name:    req.Name,
		Enabled: req.Enabled,
		Version: req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// ToggleDay godoc
// @Summary  Flip one completion cell
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    id       path      string            true   "Board ID"
// @Param    habitId  path      int               true   "Habit ID"
// @Param    day      path      int               true   "Day index, 1-based"
// @Param    body     body      toggleDayRequest  false  "Expected version"
// @Success  200      {object}  boardResponse
// @Failure  404      {object}  errorResponse
// @Failure  409      {object}  errorResponse
// @Failure  422      {object}  errorResponse
// @Router   /boards/{id}/habits/{habitId}/days/{day}/toggle [post]
func (h *BoardHandler) ToggleDay(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("habitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "habitId must be an integer"})
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "day must be an integer"})
		return
	}

	var req toggleDayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	board, err := h.svc.ToggleDay(c.Request.Context(), services.ToggleDayInput{
		BoardID: c.Param("id"),
		HabitID: habitID,
		Day:     day,
		Version: req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Delete godoc
// @Summary  Delete a board
// @Tags     boards
// @Param    id  path  string  true  "Board ID"
// @Success  204
// @Failure  404  {object}  errorResponse
// @Router   /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
