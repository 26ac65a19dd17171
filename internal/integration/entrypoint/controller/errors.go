// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

// handleError maps coded domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var adviceErr *domainerror.AdviceError
	if errors.As(err, &adviceErr) {
		ctx.JSON(statusForAdviceError(adviceErr.Code), dto.ErrorResponse{
			Error: adviceErr.Message,
			Code:  string(adviceErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Unhandled request error",
		"path", ctx.FullPath(),
		"error", err,
	)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidGoalTitle,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeUnknownTheme:
		return http.StatusBadRequest
	case domainerror.ErrCodeStoreAlreadyInitialized:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// statusForAdviceError maps advice error codes to HTTP status codes.
func statusForAdviceError(code domainerror.AdviceErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyMessage:
		return http.StatusBadRequest
	case domainerror.ErrCodeSubmissionPending:
		return http.StatusConflict
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// bindError answers a request body that failed binding.
func bindError(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  code,
	})
}
