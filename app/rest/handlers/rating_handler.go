package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"
	"store-rating-service/app/rest/middleware"
	apperrors "store-rating-service/app/utils/errors"
	"store-rating-service/app/utils/validator"
)

// RatingHandler handles rating submission and listing
type RatingHandler struct {
	ratingUsecase port.RatingUsecase
	validator     *validator.Validator
	logger        *slog.Logger
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingUsecase port.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingUsecase: ratingUsecase,
		validator:     validator.New(),
		logger:        logger,
	}
}

// SubmitRatingRequest is the rating submission body. The value bound is
// validated before any persistence is attempted.
type SubmitRatingRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid4"`
	Value   int    `json:"value" validate:"required,rating_value"`
}

// SubmitRatingResponse echoes the stored rating together with the
// store's refreshed aggregate.
type SubmitRatingResponse struct {
	Rating    *domain.Rating         `json:"rating"`
	Aggregate *domain.StoreAggregate `json:"aggregate"`
}

// Submit records the caller's 1-5 rating for a store, replacing any
// previous rating by the same caller.
func (h *RatingHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})
	}

	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid store ID",
			Code:  string(apperrors.ErrCodeInvalidInput),
		})
	}

	rating, aggregate, err := h.ratingUsecase.SubmitRating(ctx, identity.ID, storeID, req.Value)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("rating submitted",
		"user_id", identity.ID,
		"store_id", storeID,
		"value", req.Value)

	return c.JSON(http.StatusOK, SubmitRatingResponse{
		Rating:    rating,
		Aggregate: aggregate,
	})
}

// ListMine returns all ratings the caller has submitted
func (h *RatingHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})
	}

	ratings, err := h.ratingUsecase.ListUserRatings(ctx, identity.ID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, ratings)
}
