package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fireteam/teamfinder/internal/auth/model"
	"github.com/fireteam/teamfinder/internal/auth/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) RequestCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockService) VerifyCode(ctx context.Context, email, code string) (*model.SessionResponse, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionResponse), args.Error(1)
}

func (m *mockService) GoogleAuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockService) GoogleCallback(ctx context.Context, code string) (*model.SessionResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionResponse), args.Error(1)
}

func (m *mockService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_RequestCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/request-code", h.RequestCode)

		mockSvc.On("RequestCode", mock.Anything, "ada@campus.edu").Return(nil)

		w := postJSON(router, "/auth/request-code", model.RequestCodeRequest{Email: "ada@campus.edu"})

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/request-code", h.RequestCode)

		w := postJSON(router, "/auth/request-code", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		mockSvc.AssertNotCalled(t, "RequestCode")
	})

	t.Run("domain not allowed", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/request-code", h.RequestCode)

		mockSvc.On("RequestCode", mock.Anything, "ada@gmail.com").Return(model.ErrEmailNotAllowed)

		w := postJSON(router, "/auth/request-code", model.RequestCodeRequest{Email: "ada@gmail.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/request-code", h.RequestCode)

		mockSvc.On("RequestCode", mock.Anything, "ada@campus.edu").Return(model.ErrUnavailable)

		w := postJSON(router, "/auth/request-code", model.RequestCodeRequest{Email: "ada@campus.edu"})

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
	})
}

func TestHandler_VerifyCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/verify-code", h.VerifyCode)

		expected := &model.SessionResponse{
			Token:      "token-abc",
			UserID:     "user-1",
			Email:      "ada@campus.edu",
			HasProfile: true,
		}
		mockSvc.On("VerifyCode", mock.Anything, "ada@campus.edu", "123456").Return(expected, nil)

		w := postJSON(router, "/auth/verify-code", model.VerifyCodeRequest{
			Email: "ada@campus.edu",
			Code:  "123456",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "token-abc", resp.Token)
		assert.True(t, resp.HasProfile)
		mockSvc.AssertExpectations(t)
	})

	t.Run("short code fails validation", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/verify-code", h.VerifyCode)

		w := postJSON(router, "/auth/verify-code", gin.H{"email": "ada@campus.edu", "code": "123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "VerifyCode")
	})

	t.Run("wrong code", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/verify-code", h.VerifyCode)

		mockSvc.On("VerifyCode", mock.Anything, "ada@campus.edu", "000000").Return(nil, model.ErrCodeMismatch)

		w := postJSON(router, "/auth/verify-code", model.VerifyCodeRequest{
			Email: "ada@campus.edu",
			Code:  "000000",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("no code requested", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/verify-code", h.VerifyCode)

		mockSvc.On("VerifyCode", mock.Anything, "ada@campus.edu", "123456").Return(nil, model.ErrNoCodeRequested)

		w := postJSON(router, "/auth/verify-code", model.VerifyCodeRequest{
			Email: "ada@campus.edu",
			Code:  "123456",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_GoogleAuth(t *testing.T) {
	mockSvc := new(mockService)
	h := New(mockSvc, zap.NewNop().Sugar())
	router := setupRouter()
	router.GET("/auth/google", h.GoogleAuth)

	mockSvc.On("GoogleAuthURL", "xyz").Return("https://accounts.google.com/o/oauth2/auth?state=xyz")

	req := httptest.NewRequest(http.MethodGet, "/auth/google?state=xyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")
}

func TestHandler_GoogleCallback(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/auth/google/callback", h.GoogleCallback)

		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exchange failure", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/auth/google/callback", h.GoogleCallback)

		mockSvc.On("GoogleCallback", mock.Anything, "bad").Return(nil, model.ErrOAuthExchange)

		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=bad", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/logout", func(c *gin.Context) {
			c.Set("session_id", "sess-1")
			h.Logout(c)
		})

		mockSvc.On("Logout", mock.Anything, "sess-1").Return(nil)

		w := postJSON(router, "/auth/logout", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no session on context", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/logout", h.Logout)

		w := postJSON(router, "/auth/logout", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockSvc.AssertNotCalled(t, "Logout")
	})
}
