package middleware

import (
	"net/http"
	"strconv"

	"github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors attached to the context by handlers and maps
// them to a structured JSON response. AppError carries its own HTTP status;
// anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Errorw("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"status_code", statusCode,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey),
			)

			response := types.ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
			}

			// Only include details for client-side errors or in debug mode
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == errors.ValidationError ||
				appError.Type == errors.DanglingReferenceError ||
				appError.Type == errors.ConflictError ||
				appError.Type == errors.NotFoundError) {
				response.Details = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Unknown error type
		log.Errorw("Unhandled error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Type:    string(errors.ServerError),
			Message: "Internal server error",
			Code:    strconv.Itoa(http.StatusInternalServerError),
		})
	}
}
