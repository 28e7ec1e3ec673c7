package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP once, here.
// Scope violations stay deliberately vague: the response never confirms
// whether the target record exists.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrScopeViolation):
		RespondError(c, http.StatusForbidden, "Not permitted")
	case errors.Is(err, ErrDuplicateIdentity):
		RespondError(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, ErrMissingTenantScope):
		RespondError(c, http.StatusBadRequest, "A gym is required for this role")
	case errors.Is(err, ErrInvalidCoachScope):
		RespondError(c, http.StatusBadRequest, "Coach does not belong to this gym")
	case errors.Is(err, ErrWeakPassword):
		RespondError(c, http.StatusBadRequest, "Password must be at least 8 characters")
	case errors.Is(err, ErrPasswordMismatch):
		RespondError(c, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidSubscription):
		RespondError(c, http.StatusBadRequest, "Unknown subscription type")
	case errors.Is(err, ErrUpstreamWriteFailure):
		// Partial provisioning: the sign-in credential exists but a later
		// write failed. Must stay distinguishable from a clean validation
		// error so an operator can reconcile the orphaned identity.
		log.Printf("Partial provisioning failure: %v", err)
		RespondError(c, http.StatusBadGateway, "Account was only partially created; contact an administrator")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
