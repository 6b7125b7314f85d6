package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ddoslab/config"
	"ddoslab/internal/repository"
	"ddoslab/internal/scheduler"
	"ddoslab/internal/service"
)

const testToken = "test-token"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, repository.InitSchema(db, "sqlite"))

	cfg := &config.Config{Token: testToken}
	services := service.NewServices(db)
	sched := scheduler.NewScheduler(services.ExperimentService)

	return SetupRouter(cfg, db, services, sched)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// query参数里的token也可以
	req = httptest.NewRequest(http.MethodGet, "/api/v1/models?token="+testToken, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthzNoAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateAndListAttacks(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/attacks", map[string]interface{}{
		"source_ip":        "192.168.1.100",
		"target_ip":        "10.0.0.50",
		"attack_type":      "udp_flood",
		"packet_count":     10000,
		"duration_seconds": 60,
		"target_ports":     []int{80, 443},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 非法IP应该被拒绝
	w = doJSON(t, router, http.MethodPost, "/api/v1/attacks", map[string]interface{}{
		"source_ip":        "not-an-ip!",
		"target_ip":        "10.0.0.50",
		"attack_type":      "udp_flood",
		"packet_count":     10000,
		"duration_seconds": 60,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/attacks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Total   int64                    `json:"total"`
		Attacks []map[string]interface{} `json:"attacks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Equal(t, int64(1), listResp.Total)
	require.Len(t, listResp.Attacks, 1)
}

func TestGetAttackTypes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/attack_types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var types []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.ElementsMatch(t, []string{"udp_flood", "icmp_flood", "http_flood", "syn_flood"}, types)
}

func TestExperimentLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// 创建模型
	w := doJSON(t, router, http.MethodPost, "/api/v1/models", map[string]interface{}{
		"name":    "DeepPacket",
		"version": "1.2.0",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 创建实验
	w = doJSON(t, router, http.MethodPost, "/api/v1/experiments", map[string]interface{}{
		"name":     "Test Run #1",
		"model_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 记录一次攻击
	w = doJSON(t, router, http.MethodPost, "/api/v1/attacks", map[string]interface{}{
		"source_ip":        "172.16.0.10",
		"target_ip":        "10.0.0.100",
		"attack_type":      "syn_flood",
		"packet_count":     75000,
		"duration_seconds": 30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 打分
	w = doJSON(t, router, http.MethodPost, "/api/v1/experiments/1/results", map[string]interface{}{
		"attack_id":         1,
		"is_detected":       true,
		"confidence":        0.99,
		"detection_time_ms": 150,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 重复打分被拒绝
	w = doJSON(t, router, http.MethodPost, "/api/v1/experiments/1/results", map[string]interface{}{
		"attack_id":   1,
		"is_detected": false,
		"confidence":  0.1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 结束实验
	w = doJSON(t, router, http.MethodPost, "/api/v1/experiments/1/finish", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 统计随结果更新
	w = doJSON(t, router, http.MethodGet, "/api/v1/experiments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Experiment struct {
			TotalAttacks    int `json:"total_attacks"`
			DetectedAttacks int `json:"detected_attacks"`
		} `json:"experiment"`
		DetectionRate float64 `json:"detection_rate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Equal(t, 1, detail.Experiment.TotalAttacks)
	require.Equal(t, 1, detail.Experiment.DetectedAttacks)
	require.Equal(t, 1.0, detail.DetectionRate)
}

func TestSeedDemoEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/seed_demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var aiModels []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aiModels))
	require.Len(t, aiModels, 3)
}
