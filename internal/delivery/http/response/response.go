package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope standardizes the API JSON response
type Envelope struct {
	Success   bool     `json:"success"`
	Data      any      `json:"data,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Title     string   `json:"title,omitempty"`
	Status    int      `json:"status,omitempty"`
	Method    string   `json:"method,omitempty"`
	Type      string   `json:"type,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, data any) {
	c.JSON(code, Envelope{
		Success:   true,
		Data:      data,
		RequestID: requestID(c),
	})
}

// NoContent sends an empty success response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response. errType identifies the failure class
// (validation_failed, not_found, persistence_failed, internal_error).
func Error(c *gin.Context, code int, errType, title string, messages []string) {
	c.JSON(code, Envelope{
		Success:   false,
		Errors:    messages,
		Title:     title,
		Status:    code,
		Method:    c.Request.Method,
		Type:      errType,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}
