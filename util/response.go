package util

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError carries the HTTP status for a failed operation plus one
// message per violated rule. list selects the response envelope:
// {errors:[{msg}]} when set, {msg} otherwise.
type APIError struct {
	Status   int
	Messages []string
	list     bool
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *APIError) Body() gin.H {
	if e.list {
		return ErrsBody(e.Messages...)
	}
	return MsgBody(e.Messages[0])
}

func ValidationError(msgs ...string) *APIError {
	return &APIError{http.StatusBadRequest, msgs, true}
}

func ConflictError(msg string) *APIError {
	return &APIError{http.StatusBadRequest, []string{msg}, true}
}

func BadRequestError(msg string) *APIError {
	return &APIError{http.StatusBadRequest, []string{msg}, true}
}

// CredentialsError is the 401 used by login, rendered in the same
// errors-array envelope as the other auth failures.
func CredentialsError(msg string) *APIError {
	return &APIError{http.StatusUnauthorized, []string{msg}, true}
}

func UnauthorizedError(msg string) *APIError {
	return &APIError{http.StatusUnauthorized, []string{msg}, false}
}

func ForbiddenError(msg string) *APIError {
	return &APIError{http.StatusForbidden, []string{msg}, false}
}

func NotFoundError(msg string) *APIError {
	return &APIError{http.StatusNotFound, []string{msg}, false}
}

func InternalError() *APIError {
	return &APIError{http.StatusInternalServerError, []string{"Server Error."}, false}
}

func MsgBody(msg string) gin.H {
	return gin.H{"msg": msg}
}

func ErrsBody(msgs ...string) gin.H {
	list := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		list = append(list, gin.H{"msg": m})
	}
	return gin.H{"errors": list}
}

// JSONError renders a service error. Anything that is not an APIError is
// reported as a generic server error, never leaked to the client.
func JSONError(c *gin.Context, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		log.Println("Unexpected error:", err)
		apiErr = InternalError()
	}
	c.JSON(apiErr.Status, apiErr.Body())
}
