package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	mockUsecase "trinity/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		token      string
		authErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "bearer header",
			setup:      func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer good-token") },
			token:      "good-token",
			wantStatus: http.StatusOK,
		},
		{
			name: "access token cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "cookie-token"})
			},
			token:      "cookie-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing credential",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "non bearer scheme",
			setup:      func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") },
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "expired token",
			setup:      func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer stale") },
			token:      "stale",
			authErr:    domainerrors.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, authUC := newTestAuthMiddleware(t)
			if tt.token != "" {
				if tt.authErr != nil {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(nil, tt.authErr)
				} else {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(user, nil)
				}
			}

			e := echo.New()
			var gotID uuid.UUID
			e.GET("/private", func(c echo.Context) error {
				gotID, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			}, mw.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.ID, gotID)
			} else {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_RequireCapability(t *testing.T) {
	customer := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	admin := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	for _, tc := range []struct {
		user       *entity.User
		wantStatus int
	}{
		{customer, http.StatusForbidden},
		{admin, http.StatusOK},
	} {
		mw, authUC := newTestAuthMiddleware(t)
		authUC.EXPECT().Authenticate(mock.Anything, "token").Return(tc.user, nil)

		e := echo.New()
		e.GET("/reports", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, mw.Authenticate, mw.RequireCapability(entity.CapReportGenerate))

		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := serve(e, req)

		require.Equal(t, tc.wantStatus, rec.Code, "roles %v", tc.user.Roles)
		if tc.wantStatus == http.StatusForbidden {
			assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
			assert.NotContains(t, rec.Body.String(), "details")
		}
	}
}

func TestRequireCapability_WithoutAuthenticate(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.RequireCapability(entity.CapCartManage))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	tests := []struct {
		name      string
		header    string
		setupMock func(m *mockUsecase.MockAuthUsecase)
		wantActor bool
	}{
		{
			name:      "anonymous",
			setupMock: func(*mockUsecase.MockAuthUsecase) {},
		},
		{
			name:   "valid token",
			header: "Bearer admin-token",
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil)
			},
			wantActor: true,
		},
		{
			name:   "invalid token falls back to anonymous",
			header: "Bearer stale",
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, authUC := newTestAuthMiddleware(t)
			tt.setupMock(authUC)

			var gotActor bool
			e := echo.New()
			e.POST("/api/users", func(c echo.Context) error {
				_, gotActor = GetActor(c)

				return c.NoContent(http.StatusCreated)
			}, mw.OptionalAuthenticate)

			req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := serve(e, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, tt.wantActor, gotActor)
		})
	}
}
