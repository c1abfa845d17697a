package helper

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func SendSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SendError(c *gin.Context, status int, err error, code string) {
	c.JSON(status, Response{
		Success:   false,
		Error:     err.Error(),
		ErrorCode: code,
	})
}

// SendServiceError maps a service-layer error onto the response envelope
// using the sentinel taxonomy in errors.go.
func SendServiceError(c *gin.Context, err error) {
	status, code := StatusFromError(err)
	SendError(c, status, err, code)
}
