package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProfileHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name: "valid request",
			body: `{"name": "Grandma Ola", "wake_time": "07:00", "sleep_time": "22:00"}`,
			mockService: &MockProfileService{
				createFunc: func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
					return &domain.Profile{
						ID:        uuid.New(),
						Name:      req.Name,
						WakeTime:  req.WakeTime,
						SleepTime: req.SleepTime,
					}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "sleep time past midnight",
			body: `{"name": "Night Owl", "wake_time": "09:00", "sleep_time": "01:00"}`,
			mockService: &MockProfileService{
				createFunc: func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
					return &domain.Profile{ID: uuid.New(), Name: req.Name, WakeTime: req.WakeTime, SleepTime: req.SleepTime}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"wake_time": "07:00", "sleep_time": "22:00"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed wake time",
			body:           `{"name": "Ola", "wake_time": "7am", "sleep_time": "22:00"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "out of range sleep time",
			body:           `{"name": "Ola", "wake_time": "07:00", "sleep_time": "24:00"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_GetByID(t *testing.T) {
	existingID := uuid.New()
	existing := &domain.Profile{ID: existingID, Name: "Ola", WakeTime: "07:00", SleepTime: "22:00"}

	tests := []struct {
		name           string
		profileID      string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:      "existing profile",
			profileID: existingID.String(),
			mockService: &MockProfileService{
				getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
					if id == existingID {
						return existing, nil
					}
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "non-existing profile",
			profileID:      uuid.New().String(),
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid UUID",
			profileID:      "not-a-uuid",
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "storage unavailable",
			profileID: existingID.String(),
			mockService: &MockProfileService{
				getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
					return nil, fmt.Errorf("%w: dial tcp: connection refused", domain.ErrStorageUnavailable)
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+tt.profileID, nil)
			req = withURLParam(req, "profileId", tt.profileID)
			rec := httptest.NewRecorder()

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.ProfileResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
			}
		})
	}
}

func TestProfileHandler_Update(t *testing.T) {
	existingID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		body           string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:      "valid update",
			profileID: existingID.String(),
			body:      `{"sleep_time": "23:30"}`,
			mockService: &MockProfileService{
				updateFunc: func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
					return &domain.Profile{ID: id, Name: "Ola", WakeTime: "07:00", SleepTime: *req.SleepTime}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "malformed time",
			profileID:      existingID.String(),
			body:           `{"sleep_time": "late"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "profile not found",
			profileID:      uuid.New().String(),
			body:           `{"name": "Nobody"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPut, "/v1/profiles/"+tt.profileID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParam(req, "profileId", tt.profileID)
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Update() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_Delete(t *testing.T) {
	existingID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:      "existing profile",
			profileID: existingID.String(),
			mockService: &MockProfileService{
				deleteFunc: func(ctx context.Context, id uuid.UUID) error {
					return nil
				},
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "non-existing profile",
			profileID:      uuid.New().String(),
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid UUID",
			profileID:      "nope",
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodDelete, "/v1/profiles/"+tt.profileID, nil)
			req = withURLParam(req, "profileId", tt.profileID)
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
