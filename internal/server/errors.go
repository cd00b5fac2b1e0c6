package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accesskeydomain "github.com/metermint/metermint/internal/accesskey/domain"
	"github.com/metermint/metermint/internal/keycodec"
	ledgerdomain "github.com/metermint/metermint/internal/ledger/domain"
	organizationdomain "github.com/metermint/metermint/internal/organization/domain"
	querydomain "github.com/metermint/metermint/internal/query/domain"
	userdomain "github.com/metermint/metermint/internal/user/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts the last gin error into a JSON response.
// Handlers report failures through AbortWithError and never write error
// bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, accesskeydomain.ErrNotMember):
		return http.StatusPreconditionFailed, errorPayload{
			Type:    "precondition_failed",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, organizationdomain.ErrInvalidName),
		errors.Is(err, organizationdomain.ErrInvalidRole),
		errors.Is(err, userdomain.ErrInvalidUsername),
		errors.Is(err, userdomain.ErrInvalidEmail),
		errors.Is(err, accesskeydomain.ErrInvalidOrganization),
		errors.Is(err, accesskeydomain.ErrInvalidUser),
		errors.Is(err, keycodec.ErrInvalidOrganization),
		errors.Is(err, ledgerdomain.ErrEmptyBatch),
		errors.Is(err, ledgerdomain.ErrInvalidTransaction),
		errors.Is(err, ledgerdomain.ErrInvalidPayment),
		errors.Is(err, querydomain.ErrInvalidColumn):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, organizationdomain.ErrAlreadyExists),
		errors.Is(err, organizationdomain.ErrAlreadyMember),
		errors.Is(err, userdomain.ErrAlreadyExists),
		errors.Is(err, accesskeydomain.ErrAlreadyRevoked):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, organizationdomain.ErrNotFound),
		errors.Is(err, organizationdomain.ErrUserNotFound),
		errors.Is(err, organizationdomain.ErrMemberNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, accesskeydomain.ErrNotFound),
		errors.Is(err, querydomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
