package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"moviedb-backend/application/services"
	"moviedb-backend/domain/reviews"
	"moviedb-backend/pkg/common"
	apperrors "moviedb-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	service *services.ReviewService
	logger  *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

// Create handles POST /movies/{movieId}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	var review reviews.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		common.RespondError(w, apperrors.NewValidationError("invalid request body"))
		return
	}
	// The path owns the key; a conflicting body value is ignored.
	review.MovieID = movieID

	if err := h.service.Add(r.Context(), review); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondMessage(w, http.StatusCreated, "review added")
}

// ListByMovie handles GET /movies/{movieId}/reviews with an optional
// minRating query parameter
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	items, err := h.service.ListByMovie(r.Context(), movieID, r.URL.Query().Get("minRating"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondReviews(w, http.StatusOK, items)
}

// ListByQualifier handles GET /movies/{movieId}/reviews/{qualifier}. The
// qualifier segment is either a review year or a reviewer name.
func (h *ReviewHandler) ListByQualifier(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	items, err := h.service.ListByMovieQualifier(r.Context(), movieID, chi.URLParam(r, "qualifier"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondReviews(w, http.StatusOK, items)
}

// Update handles PUT /movies/{movieId}/reviews/{qualifier}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	var patch reviews.ReviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.RespondError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	updated, err := h.service.Update(r.Context(), movieID, patch)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, common.Envelope{
		Message: "review updated",
		Data:    updated,
	})
}

// ListByReviewer handles GET /reviews/{reviewerName}
func (h *ReviewHandler) ListByReviewer(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListByReviewer(r.Context(), chi.URLParam(r, "reviewerName"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondReviews(w, http.StatusOK, items)
}

// ListAll handles GET /reviews
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAll(r.Context())
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondReviews(w, http.StatusOK, items)
}

// pathMovieID parses the movieId path segment
func pathMovieID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "movieId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewInvalidParameterError("movieId", raw)
	}
	return id, nil
}
