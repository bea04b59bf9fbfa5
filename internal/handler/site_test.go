package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitepulse/internal/mocks"
	"sitepulse/internal/model"
	"sitepulse/internal/service"
)

const ownerHex = "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"

func init() {
	gin.SetMode(gin.TestMode)
}

func newSiteRouter(h *SiteHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1")
	v1.POST("/sites", h.Register)
	v1.GET("/sites", h.List)
	v1.PATCH("/sites/:publicId", h.Update)
	v1.DELETE("/sites/:publicId", h.Delete)
	v1.GET("/sites/:publicId/stats", h.Stats)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSiteHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sites := mocks.NewMockSiteServiceInterface(ctrl)
	router := newSiteRouter(NewSiteHandler(sites, mocks.NewMockStatsServiceInterface(ctrl)))

	t.Run("invalid JSON body", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/sites", "{invalid json", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Message, "Invalid request")
	})

	t.Run("missing owner identity", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/sites", map[string]string{"public_id": "abc123"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("public id too short", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/sites", map[string]string{"public_id": "ab", "owner_identity": ownerHex}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		name := "Blog"
		sites.EXPECT().Register(gomock.Any(), &model.RegisterSiteRequest{
			PublicID:      "abc123",
			Name:          &name,
			OwnerIdentity: ownerHex,
		}).Return(&model.Site{PublicID: "abc123", Name: &name, OwnerIdentity: ownerHex, SecretToken: "hidden"}, nil)

		w := doJSON(router, http.MethodPost, "/api/v1/sites", map[string]string{
			"public_id":      "abc123",
			"name":           "Blog",
			"owner_identity": ownerHex,
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hidden")

		var resp struct {
			Code int        `json:"code"`
			Data model.Site `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "abc123", resp.Data.PublicID)
	})

	t.Run("ownership conflict", func(t *testing.T) {
		sites.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrOwnershipConflict)

		w := doJSON(router, http.MethodPost, "/api/v1/sites", map[string]string{"public_id": "abc123", "owner_identity": ownerHex}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, http.StatusConflict, decodeError(t, w).Code)
	})
}

func TestSiteHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sites := mocks.NewMockSiteServiceInterface(ctrl)
	router := newSiteRouter(NewSiteHandler(sites, mocks.NewMockStatsServiceInterface(ctrl)))

	t.Run("returns sites", func(t *testing.T) {
		sites.EXPECT().ListByOwner(gomock.Any(), ownerHex).Return([]model.Site{{PublicID: "b"}, {PublicID: "a"}}, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/sites?owner="+ownerHex, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []model.Site `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "b", resp.Data[0].PublicID)
	})

	t.Run("missing owner", func(t *testing.T) {
		sites.EXPECT().ListByOwner(gomock.Any(), "").Return(nil, fmt.Errorf("%w: owner identity is required", service.ErrValidation))

		w := doJSON(router, http.MethodGet, "/api/v1/sites", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSiteHandler_OwnerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sites := mocks.NewMockSiteServiceInterface(ctrl)
	stats := mocks.NewMockStatsServiceInterface(ctrl)
	router := newSiteRouter(NewSiteHandler(sites, stats))
	caller := map[string]string{CallerIdentityHeader: ownerHex}

	t.Run("update passes caller header", func(t *testing.T) {
		sites.EXPECT().Update(gomock.Any(), "abc123", ownerHex, gomock.Any()).Return(&model.Site{PublicID: "abc123"}, nil)

		w := doJSON(router, http.MethodPatch, "/api/v1/sites/abc123", map[string]string{"name": "New"}, caller)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update without body", func(t *testing.T) {
		sites.EXPECT().Update(gomock.Any(), "abc123", ownerHex, &model.UpdateSiteRequest{}).Return(&model.Site{PublicID: "abc123"}, nil)

		w := doJSON(router, http.MethodPatch, "/api/v1/sites/abc123", nil, caller)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update with malformed body", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/v1/sites/abc123", "{oops", caller)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete by stranger", func(t *testing.T) {
		sites.EXPECT().Delete(gomock.Any(), "abc123", "").Return(nil, service.ErrAuthorizationFailed)

		w := doJSON(router, http.MethodDelete, "/api/v1/sites/abc123", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete success", func(t *testing.T) {
		sites.EXPECT().Delete(gomock.Any(), "abc123", ownerHex).Return(&model.DeleteSiteResponse{PublicID: "abc123", Deleted: true}, nil)

		w := doJSON(router, http.MethodDelete, "/api/v1/sites/abc123", nil, caller)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("stats for unknown site", func(t *testing.T) {
		stats.EXPECT().GetStats(gomock.Any(), "nope", ownerHex).Return(nil, service.ErrSiteNotFound)

		w := doJSON(router, http.MethodGet, "/api/v1/sites/nope/stats", nil, caller)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stats success", func(t *testing.T) {
		stats.EXPECT().GetStats(gomock.Any(), "abc123", ownerHex).Return(&model.SiteStats{
			Site:   model.SiteSummary{PublicID: "abc123"},
			Totals: model.Totals{Visits: 3, Pages: 1},
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/sites/abc123/stats", nil, caller)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.SiteStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Data.Totals.Visits)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		stats.EXPECT().GetStats(gomock.Any(), "abc123", ownerHex).Return(nil, fmt.Errorf("failed to load stats: %w", assert.AnError))

		w := doJSON(router, http.MethodGet, "/api/v1/sites/abc123/stats", nil, caller)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w).Message)
	})
}
