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

	"github.com/fireteam/teamfinder/internal/application/model"
	"github.com/fireteam/teamfinder/internal/application/service"
	teamModel "github.com/fireteam/teamfinder/internal/team/model"
	"github.com/fireteam/teamfinder/internal/validation"
)

func TestMain(m *testing.M) {
	if err := validation.Register(); err != nil {
		panic(err)
	}
	m.Run()
}

type mockService struct {
	mock.Mock
}

func (m *mockService) Apply(
	ctx context.Context,
	userID, teamID string,
	req *model.ApplyRequest,
) (*model.Application, error) {
	args := m.Called(ctx, userID, teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *mockService) ListForTeam(
	ctx context.Context,
	userID, teamID, status string,
) ([]model.ApplicantView, error) {
	args := m.Called(ctx, userID, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ApplicantView), args.Error(1)
}

func (m *mockService) ListMine(ctx context.Context, userID string) ([]model.MineView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MineView), args.Error(1)
}

func (m *mockService) Approve(ctx context.Context, userID, applicationID string) (*model.Application, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *mockService) Reject(ctx context.Context, userID, applicationID string) (*model.Application, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.POST("/api/teams/:id/applications", h.Apply)
	r.GET("/api/teams/:id/applications", h.ListForTeam)
	r.GET("/api/applications/mine", h.ListMine)
	r.POST("/api/applications/:id/approve", h.Approve)
	r.POST("/api/applications/:id/reject", h.Reject)
	return r
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Apply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "user-2")

		reqBody := model.ApplyRequest{PreferredRole: "web", ContactInfo: "9876543210"}
		mockSvc.On("Apply", mock.Anything, "user-2", "team-1", &reqBody).
			Return(&model.Application{ID: "app-1", Status: model.StatusPending}, nil)

		w := postJSON(router, "/api/teams/team-1/applications", reqBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("contact info with leading zero rejected", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "user-2")

		w := postJSON(router, "/api/teams/team-1/applications",
			model.ApplyRequest{PreferredRole: "web", ContactInfo: "0123456789"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		mockSvc.AssertNotCalled(t, "Apply")
	})

	t.Run("short contact info rejected", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "user-2")

		w := postJSON(router, "/api/teams/team-1/applications",
			model.ApplyRequest{PreferredRole: "web", ContactInfo: "12345"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Apply")
	})

	t.Run("team full", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "user-2")

		reqBody := model.ApplyRequest{PreferredRole: "web", ContactInfo: "9876543210"}
		mockSvc.On("Apply", mock.Anything, "user-2", "team-1", &reqBody).
			Return(nil, teamModel.ErrTeamFull)

		w := postJSON(router, "/api/teams/team-1/applications", reqBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "team is full")
	})
}

func TestHandler_ListForTeam(t *testing.T) {
	t.Run("forbidden for non-owner", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "user-2")

		mockSvc.On("ListForTeam", mock.Anything, "user-2", "team-1", "").
			Return(nil, teamModel.ErrNotTeamOwner)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/teams/team-1/applications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "owner-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/teams/team-1/applications?status=maybe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "ListForTeam")
	})
}

func TestHandler_Approve(t *testing.T) {
	t.Run("already decided", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "owner-1")

		mockSvc.On("Approve", mock.Anything, "owner-1", "app-1").
			Return(nil, model.ErrNotPending)

		w := postJSON(router, "/api/applications/app-1/approve", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "owner-1")

		mockSvc.On("Approve", mock.Anything, "owner-1", "app-1").
			Return(&model.Application{ID: "app-1", Status: model.StatusApproved}, nil)

		w := postJSON(router, "/api/applications/app-1/approve", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.Application
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusApproved, resp.Status)
	})
}

func TestHandler_Reject(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), "owner-1")

	mockSvc.On("Reject", mock.Anything, "owner-1", "missing").
		Return(nil, model.ErrApplicationNotFound)

	w := postJSON(router, "/api/applications/missing/reject", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
