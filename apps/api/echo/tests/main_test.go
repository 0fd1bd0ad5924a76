package tests

import (
	"net/http"
	"os"
	"testing"

	"github.com/ethiopulse/backend/core"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("ENV", "TEST")
	conf = core.NewConfig()
	os.Exit(m.Run())
}

func Test_home(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if want := "Welcome to the EthioPulse API!"; rec.Body.String() != want {
		t.Errorf("failed! body = %v; want %v", rec.Body.String(), want)
	}
}

func Test_health(t *testing.T) {
	app := setup(t)

	tt := httpTest{
		name:     "health check",
		method:   http.MethodGet,
		path:     "/api/health",
		wantCode: http.StatusOK,
		wantData: []byte(`{"status":"ok"}`),
	}
	req, rec := newRequest(tt.method, tt.path)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}
