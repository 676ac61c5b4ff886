package httperr

import (
	"errors"
	"net/http"

	"parking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:      http.StatusBadRequest,
	errs.KindState:           http.StatusBadRequest,
	errs.KindNotFound:        http.StatusNotFound,
	errs.KindConflict:        http.StatusConflict,
	errs.KindAuthorization:   http.StatusForbidden,
	errs.KindUnauthenticated: http.StatusUnauthorized,
}

// StatusOf maps the kind carried by err to a status code. Unkinded errors are 500.
func StatusOf(err error) int {
	if kind, ok := errs.KindOf(err); ok {
		if status, found := kindStatus[kind]; found {
			return status
		}
	}
	return http.StatusInternalServerError
}

// FromError aborts with the status of err's kind. Kinded errors expose their own
// message; anything else is reported as an internal error.
func FromError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		var kinded *errs.Error
		if errors.As(err, &kinded) {
			msg = kinded.Error()
		}
	}
	AbortWithError(c, status, err, msg, nil)
}

// BadRequest reports a binding failure, listing the failed rules when the validator
// produced them.
func BadRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
