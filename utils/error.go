package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrInvalidRange is returned when a period summary is asked for a range whose
// start date falls after its end date.
var ErrInvalidRange = errors.New("invalid date range: start date is after end date")

// SourceError wraps a failure to read from the spreadsheet-backed store. It
// records which query failed so the boundary layer can log something useful
// while showing the guest-facing generic message.
type SourceError struct {
	Query string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("booking store unavailable (%s): %v", e.Query, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err with the name of the failed query.
func NewSourceError(query string, err error) error {
	return &SourceError{Query: query, Err: err}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
