package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoquest/GeoQuest_Go/internal/handler"
)

func TestUserIdentityMiddleware(t *testing.T) {
	const userID = "3f8a1c2e-5b7d-4e9f-a1b2-c3d4e5f60718"

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{"valid uuid", userID, http.StatusOK, userID},
		{"uppercase uuid is normalized", "3F8A1C2E-5B7D-4E9F-A1B2-C3D4E5F60718", http.StatusOK, userID},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not a uuid", "alice", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := UserIdentityMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = handler.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("POST", "/api/v1/care/verify", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, seen)
		})
	}
}
