package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

func TestProfileHandler_Lifecycle(t *testing.T) {
	store := profile.NewMemoryStore()
	svc := &MockCraftingService{}
	h := NewProfileHandler(store, svc)

	// Empty list is an array
	w := httptest.NewRecorder()
	h.HandleList(w, newRequest(t, http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profiles":[]}`, w.Body.String())

	for _, name := range []string{"Iop Feu", "Crâ"} {
		w = httptest.NewRecorder()
		h.HandleCreate(w, newRequest(t, http.MethodPost, "/", CreateProfileRequest{Name: name}))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Creating twice is not an error
	w = httptest.NewRecorder()
	h.HandleCreate(w, newRequest(t, http.MethodPost, "/", CreateProfileRequest{Name: "Crâ"}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.HandleList(w, newRequest(t, http.MethodGet, "/", nil))
	var resp ProfilesResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Iop Feu", "Crâ"}, resp.Profiles)

	// Path segments arrive escaped
	svc.On("DeleteProfile", mock.Anything, "Iop Feu").Return(nil).Run(func(args mock.Arguments) {
		require.NoError(t, store.Delete(args.Get(0).(context.Context), args.String(1)))
	})
	w = httptest.NewRecorder()
	h.HandleDelete(w, newRequest(t, http.MethodDelete, "/", nil, ParamProfile, url.PathEscape("Iop Feu")))
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Crâ"}, names)
}

func TestProfileHandler_DeleteUnknown(t *testing.T) {
	svc := &MockCraftingService{}
	svc.On("DeleteProfile", mock.Anything, "ghost").Return(fmt.Errorf("ghost: %w", domain.ErrProfileNotFound))
	h := NewProfileHandler(profile.NewMemoryStore(), svc)

	w := httptest.NewRecorder()
	h.HandleDelete(w, newRequest(t, http.MethodDelete, "/", nil, ParamProfile, "ghost"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgProfileNotFoundError)
	svc.AssertExpectations(t)
}

func TestProfileHandler_CreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"Missing name", map[string]string{}},
		{"Leading space", CreateProfileRequest{Name: " bob"}},
		{"Control character", CreateProfileRequest{Name: "bob\n"}},
		{"Not JSON", "name=bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProfileHandler(profile.NewMemoryStore(), &MockCraftingService{})

			w := httptest.NewRecorder()
			h.HandleCreate(w, newRequest(t, http.MethodPost, "/", tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
