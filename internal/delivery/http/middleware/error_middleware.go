package middleware

import (
	"errors"
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// titles maps failure classes to the human-readable envelope title.
var titles = map[apperror.Kind]string{
	apperror.KindValidation:  "One or more validation errors occurred.",
	apperror.KindNotFound:    "Resource not found.",
	apperror.KindPersistence: "The operation could not be completed.",
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			title, ok := titles[appErr.Kind]
			if !ok {
				title = "An unexpected error occurred."
			}
			response.Error(c, appErr.Code, string(appErr.Kind), title, appErr.Messages)
			return
		}

		// Never expose internal error details to clients. Log server-side
		// and send a generic message.
		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred.", []string{"An unexpected error occurred. Please try again later."})
	}
}
