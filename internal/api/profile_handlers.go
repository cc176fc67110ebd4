package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/service/profile"
)

// ProfileService is the use-case surface the profile handlers need.
type ProfileService interface {
	CreateOrUpdate(ctx context.Context, userID, fullName, birthDate string) (*domain.Profile, error)
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Reading(fullName, birthDate string) (*domain.Reading, error)
}

// profileRequest is the POST body for profile calculation.
type profileRequest struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
}

// HandleCreateProfile calculates (or recalculates) a user's numerology
// profile and stores it.
//
//	POST /api/v1/numerology/profile
func (h *Handlers) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Nội dung yêu cầu không hợp lệ.")
		return
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "userId phải là UUID hợp lệ.")
		return
	}

	p, err := h.profiles.CreateOrUpdate(r.Context(), req.UserID, req.FullName, req.BirthDate)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// HandleGetProfile returns a user's stored profile.
//
//	GET /api/v1/numerology/profile/{userID}
func (h *Handlers) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if _, err := uuid.Parse(userID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "userId phải là UUID hợp lệ.")
		return
	}

	p, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			respondError(w, http.StatusNotFound, profile.CodeProfileNotFound, "Không tìm thấy hồ sơ numerology.")
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleReading computes a stateless reading from query parameters without
// persisting anything.
//
//	GET /api/v1/numerology/reading?fullName=...&birthDate=YYYY-MM-DD
func (h *Handlers) HandleReading(w http.ResponseWriter, r *http.Request) {
	fullName := r.URL.Query().Get("fullName")
	birthDate := r.URL.Query().Get("birthDate")

	reading, err := h.profiles.Reading(fullName, birthDate)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, reading)
}
