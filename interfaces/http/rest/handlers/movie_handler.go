package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"moviedb-backend/application/services"
	"moviedb-backend/domain/catalog"
	"moviedb-backend/pkg/common"
	apperrors "moviedb-backend/pkg/errors"

	"go.uber.org/zap"
)

// MovieHandler handles catalogue HTTP requests
type MovieHandler struct {
	service *services.CatalogService
	logger  *zap.Logger
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(service *services.CatalogService, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{service: service, logger: logger}
}

// movieWithCast is the GET response when ?cast=true is set
type movieWithCast struct {
	catalog.Movie
	Cast []catalog.CastMember `json:"cast,omitempty"`
}

// List handles GET /movies
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context())
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondData(w, http.StatusOK, movies)
}

// Get handles GET /movies/{movieId}. With ?cast=true the cast list is
// embedded in the payload.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	withCast := r.URL.Query().Get("cast") == "true"
	movie, cast, err := h.service.Get(r.Context(), movieID, withCast)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	if withCast {
		common.RespondData(w, http.StatusOK, movieWithCast{Movie: *movie, Cast: cast})
		return
	}
	common.RespondData(w, http.StatusOK, movie)
}

// Create handles POST /movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var movie catalog.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		common.RespondError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	if err := h.service.Add(r.Context(), movie); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondMessage(w, http.StatusCreated, "movie added")
}

// Delete handles DELETE /movies/{movieId}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathMovieID(r)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "movie deleted")
}

// Cast handles GET /movies/cast with movieId, actorName and roleName
// query parameters
func (h *MovieHandler) Cast(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	raw := query.Get("movieId")
	movieID, err := strconv.Atoi(raw)
	if err != nil {
		common.RespondError(w, apperrors.NewInvalidParameterError("movieId", raw))
		return
	}

	cast, err := h.service.Cast(r.Context(), catalog.CastQuery{
		MovieID:   movieID,
		ActorName: query.Get("actorName"),
		RoleName:  query.Get("roleName"),
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondData(w, http.StatusOK, cast)
}
