// Package httperr defines the error envelope the development backend
// answers with. Clients read either "message" or "error.message".
package httperr

import (
	"net/http"

	"courtbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingCause = errs.New("aborted without cause")

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Message: msg, Detail: detail}
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for the request logger and writes
// the envelope. A nil err is recorded as errMissingCause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errMissingCause
	}
	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
