package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjipark/tteokbang-backend/pkg/config"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev, Timezone: "Asia/Seoul"},
	}
}

func TestHealthLive(t *testing.T) {
	router := NewRouter(Deps{Config: testConfig()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "live", envelope.Data["status"])
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-Tteokbang-Env"))
}

func TestHealthReadyReportsRedisDisabled(t *testing.T) {
	router := NewRouter(Deps{Config: testConfig(), DB: okPinger{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "ok", envelope.Data["database"])
	assert.Equal(t, "disabled", envelope.Data["redis"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := NewRouter(Deps{Config: testConfig()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
