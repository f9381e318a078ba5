package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/config"
	"github.com/stagefolio/internal/db"
	"github.com/stagefolio/internal/handler"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.ContactMessage{},
		&db.PersonalInfo{},
		&db.Stage{},
		&db.ContentSection{},
		&db.AdminSession{},
		&db.UploadedImage{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	api := handler.NewAPI(gdb, config.AppConfig{
		AdminPassword: "router-test-secret",
		SessionTTL:    time.Hour,
	})
	return SetupRouter(api, []string{"*"})
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouterTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp.Status != "healthy" || resp.Database != "connected" {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}

func TestAdminRoutesAreGated(t *testing.T) {
	r := setupRouterTest(t)

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/contacts"},
		{http.MethodDelete, "/api/contacts/some-id"},
		{http.MethodPost, "/api/personal-info"},
		{http.MethodPost, "/api/stages/stage1"},
		{http.MethodPost, "/api/content/about"},
		{http.MethodGet, "/api/admin/content"},
		{http.MethodGet, "/api/admin/analytics"},
		{http.MethodPost, "/api/admin/upload-image"},
	}

	for _, route := range gated {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestPublicReadsAreOpen(t *testing.T) {
	r := setupRouterTest(t)

	open := []string{
		"/api/personal-info",
		"/api/stages",
		"/api/stages/stage2",
		"/api/content/conclusion",
	}

	for _, path := range open {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatal("expected an Access-Control-Allow-Origin header")
	}
}
