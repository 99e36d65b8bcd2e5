package handler

import (
	"net/http"

	"github.com/osse101/CraftPlanner_Go/internal/crafting"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

// ProfileHandler manages the set of profiles
type ProfileHandler struct {
	store    profile.Store
	crafting crafting.Service
}

func NewProfileHandler(store profile.Store, craftingSvc crafting.Service) *ProfileHandler {
	return &ProfileHandler{store: store, crafting: craftingSvc}
}

type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,profilename"`
}

type ProfilesResponse struct {
	Profiles []string `json:"profiles"`
}

// HandleList returns every profile name in creation order
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} ProfilesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionListProfiles, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	respondJSON(w, http.StatusOK, ProfilesResponse{Profiles: names})
}

// HandleCreate registers a profile; creating an existing profile succeeds
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile to create"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles [post]
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionCreateProfile); err != nil {
		return
	}

	if err := h.store.Create(r.Context(), req.Name); err != nil {
		respondServiceError(w, r, ActionCreateProfile, err)
		return
	}

	logger.FromContext(r.Context()).Info("Profile created", "profile", req.Name)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgProfileCreated})
}

// HandleDelete removes a profile together with its in-memory crafting session
// @Summary Delete profile
// @Description Removes the profile with its crafting list, owned ingredients and sales
// @Tags profiles
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profile} [delete]
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	if err := h.crafting.DeleteProfile(r.Context(), name); err != nil {
		respondServiceError(w, r, ActionDeleteProfile, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
}
