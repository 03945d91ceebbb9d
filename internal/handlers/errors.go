package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusForKind maps an apperrors kind to its HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case apperrors.KindInvalidAmount, apperrors.KindValidation, apperrors.KindInvalidOperation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInsufficientFunds, apperrors.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error", "kind"} for a service error. Internal errors are logged at Error
// and their message is not exposed, only the request ID to correlate with logs; expected rejections are logged at Warn.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMessage string) {
	kind := apperrors.Kind(err)
	status := statusForKind(kind)
	if status == http.StatusInternalServerError {
		logger.Error(failureMessage, slog.String("error", err.Error()))
		body := gin.H{"error": failureMessage, "kind": kind}
		if requestID, ok := middleware.GetRequestIDFromContext(c); ok {
			body["requestId"] = requestID
		}
		c.JSON(status, body)
		return
	}
	logger.Warn(failureMessage, slog.String("error", err.Error()), slog.String("kind", kind))
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}

// respondBindingError reports a request that failed binding. A failed `money` tag is reported
// as INVALID_AMOUNT so clients see the same kind the ledger would return.
func respondBindingError(c *gin.Context, logger *slog.Logger, err error) {
	kind := apperrors.KindValidation
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Tag() == "money" {
				kind = apperrors.KindInvalidAmount
				break
			}
		}
	}
	logger.Warn("Failed to bind request", slog.String("error", err.Error()), slog.String("kind", kind))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error(), "kind": kind})
}
