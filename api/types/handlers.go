package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/internal/services/lectures"
	"github.com/killallgit/lecture-api/internal/services/translator"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// ParseIntParam extracts and parses a URL parameter as int
// Returns the parsed value and sends error response if parsing fails
func ParseIntParam(c *gin.Context, paramName string) (int, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.Atoi(paramStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid " + paramName,
		})
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendServiceError maps service error kinds to HTTP status codes so every
// handler reports the same taxonomy
func SendServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, lectures.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, lectures.ErrLectureNotFound), errors.Is(err, lectures.ErrChunkNotFound):
		status = http.StatusNotFound
	case errors.Is(err, lectures.ErrLectureEnded),
		errors.Is(err, lectures.ErrLectureNotEnded),
		errors.Is(err, lectures.ErrDuplicateChunk):
		status = http.StatusConflict
	case errors.Is(err, translator.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, translator.ErrBadInput):
		status = http.StatusBadRequest
	case errors.Is(err, lectures.ErrTranslationFailed),
		errors.Is(err, lectures.ErrEnhancementFailed),
		errors.Is(err, translator.ErrAuthFailed),
		errors.Is(err, translator.ErrProviderUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, lectures.ErrStorageUnavailable), errors.Is(err, lectures.ErrPersistenceFailed):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
