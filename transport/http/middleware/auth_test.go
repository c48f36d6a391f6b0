package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"catering/config"
	"catering/infras/jwt"
	jwtMocks "catering/infras/jwt/mocks"
	otelMocks "catering/infras/otel/mocks"
	"catering/permissions"
	"catering/shared"
	"catering/transport/http/middleware"
)

const apiKey = "internal-key"

func testPermissions() *permissions.PermissionData {
	return &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/menu", Method: http.MethodGet, Skip: true},
			{Path: "/v1/reports/summary", Method: http.MethodGet, Permissions: []string{"admin"}},
			{Path: "/v1/employees", Method: http.MethodGet, Permissions: []string{"admin"}},
		},
	}
}

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	auth := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), testPermissions(), cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		principal := shared.GetPrincipal(r.Context())

		_ = json.NewEncoder(w).Encode(map[string]string{"id": principal.ID, "role": principal.Role.String()})
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC)
		r.Get("/menu", echo)
		r.Get("/reports/summary", echo)
		r.Get("/bookings/{id}", echo)
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", echo)
		})
	})

	return router
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		header    map[string]string
		setupMock func(jwtService *jwtMocks.MockJWT)
		wantCode  int
		wantID    string
	}{
		{
			name:      "public route needs no token",
			target:    "/v1/menu",
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "missing header",
			target:    "/v1/bookings/b-1",
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "malformed header",
			target:    "/v1/bookings/b-1",
			header:    map[string]string{"Authorization": "Token abc"},
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			target: "/v1/bookings/b-1",
			header: map[string]string{"Authorization": "Bearer expired"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "claims without email",
			target: "/v1/bookings/b-1",
			header: map[string]string{"Authorization": "Bearer partial"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "partial", jwt.AccessToken).Return(&jwt.Claims{UserID: "u-1", Role: "user"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "unknown role",
			target: "/v1/bookings/b-1",
			header: map[string]string{"Authorization": "Bearer odd"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "odd", jwt.AccessToken).Return(&jwt.Claims{UserID: "u-1", Email: "a@b.co", Role: "owner"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "principal reaches the handler",
			target: "/v1/bookings/b-1",
			header: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(&jwt.Claims{UserID: "u-1", Email: "a@b.co", Role: "corporate"}, nil)
			},
			wantCode: http.StatusOK,
			wantID:   "u-1",
		},
		{
			name:   "role outside the route's list",
			target: "/v1/reports/summary",
			header: map[string]string{"Authorization": "Bearer employee"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "employee", jwt.AccessToken).Return(&jwt.Claims{UserID: "e-1", Email: "e@b.co", Role: "employee"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "admin route",
			target: "/v1/reports/summary",
			header: map[string]string{"Authorization": "Bearer admin"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "admin", jwt.AccessToken).Return(&jwt.Claims{UserID: "a-1", Email: "a@b.co", Role: "admin"}, nil)
			},
			wantCode: http.StatusOK,
			wantID:   "a-1",
		},
		{
			name:   "subrouter root resolves to the listed path",
			target: "/v1/employees",
			header: map[string]string{"Authorization": "Bearer employee"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "employee", jwt.AccessToken).Return(&jwt.Claims{UserID: "e-1", Email: "e@b.co", Role: "employee"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "internal api key",
			target:    "/v1/reports/summary",
			header:    map[string]string{"X-API-Key": apiKey},
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
			wantID:    "system",
		},
		{
			name:      "wrong api key",
			target:    "/v1/reports/summary",
			header:    map[string]string{"X-API-Key": "guess"},
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))
			tt.setupMock(jwtService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			newRouter(t, jwtService).ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantID != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantID, body["id"])
			}
		})
	}
}
