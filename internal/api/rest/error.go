package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	errCodeBadRequest    ErrorCode = "bad_request"
	errCodeUnauthorized  ErrorCode = "unauthorized"
	errCodeNotFound      ErrorCode = "not_found"
	errCodeBackendError  ErrorCode = "backend_error"
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message)
}

// respondDomainError maps a domain error to its HTTP representation. The
// message stays generic: detailed causes have already gone to the log.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrMissingCredentials):
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNoUserStorage):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrBackendFailure):
		respondWithError(c, http.StatusBadGateway, errCodeBackendError, err.Error())
	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "internal error")
	}
}
