package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every failed request renders: a public
// message plus an optional machine-readable detail block (field violations,
// conflict info).
type Response struct {
	Status int          `json:"-"`
	Error  ErrorMessage `json:"error"`
	Detail any          `json:"detail,omitempty"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// AbortWithError renders the public envelope and records the underlying
// cause on the gin context so the error middleware can log it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError requires a non-nil cause")
	}

	resp := Response{
		Status: status,
		Error:  ErrorMessage{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
