package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
	apperrors "store-rating-service/app/utils/errors"
)

// OwnerHandler serves the store-owner analytics section
type OwnerHandler struct {
	storeUsecase port.StoreUsecase
	logger       *slog.Logger
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(storeUsecase port.StoreUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		storeUsecase: storeUsecase,
		logger:       logger,
	}
}

// Analytics returns the caller's stores with their ratings summarized
func (h *OwnerHandler) Analytics(c echo.Context) error {
	ctx := c.Request().Context()

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})
	}

	analytics, err := h.storeUsecase.OwnerAnalytics(ctx, identity.ID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, analytics)
}
