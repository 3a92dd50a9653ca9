package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
	apperrors "store-rating-service/app/utils/errors"
	"store-rating-service/app/utils/validator"
)

// StoreHandler handles store browsing and administration
type StoreHandler struct {
	storeUsecase port.StoreUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeUsecase port.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		storeUsecase: storeUsecase,
		validator:    validator.New(),
		logger:       logger,
	}
}

// CreateStoreRequest is the admin store creation body
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=400"`
	OwnerID string `json:"owner_id" validate:"omitempty,uuid4"`
}

// List returns all stores with aggregate ratings. When the caller is
// authenticated their own rating per store is included; the listing
// itself is public.
func (h *StoreHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var forUser *uuid.UUID
	if identity := middleware.IdentityFrom(c); identity != nil {
		forUser = &identity.ID
	}

	stores, err := h.storeUsecase.ListStores(ctx, forUser)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, stores)
}

// Create registers a new store. Admin only; the guard enforces the role
// before this handler runs.
func (h *StoreHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	var ownerID *uuid.UUID
	if req.OwnerID != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid owner ID",
				Code:  string(apperrors.ErrCodeInvalidInput),
			})
		}
		ownerID = &parsed
	}

	store, err := h.storeUsecase.CreateStore(ctx, req.Name, req.Email, req.Address, ownerID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("store created", "store_id", store.ID, "name", store.Name)
	return c.JSON(http.StatusCreated, store)
}
