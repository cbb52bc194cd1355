package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every service returns: {"error": "..."}.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Internal answers 500 with the raw error text.
func Internal(c *gin.Context, err error) {
	AbortWithError(c, 500, err, err.Error())
}
