package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBoardNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "board not found"})

	case errors.Is(err, domain.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "habit not found"})

	case errors.Is(err, domain.ErrBoardConflict):
		c.JSON(http.StatusConflict, errorResponse{
			Error:   "version conflict",
			Message: "Data has been modified elsewhere. Please sync.",
		})

	case errors.Is(err, domain.ErrHabitInactive),
		errors.Is(err, domain.ErrHabitDisabled),
		errors.Is(err, domain.ErrDayOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBoardTitleEmpty),
		errors.Is(err, domain.ErrBoardTitleTooLong),
		errors.Is(err, domain.ErrHabitNameTooLong),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
