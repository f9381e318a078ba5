package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/config"
	"github.com/stagefolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminPassword = "Sk4t3_b0Ar5"

func setupHandlerTest(t *testing.T) (*API, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
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

	api := NewAPI(gdb, config.AppConfig{
		AdminPassword: testAdminPassword,
		SessionTTL:    time.Hour,
	})

	r := gin.New()
	r.GET("/api/health", api.Health)
	r.POST("/api/contact", api.SubmitContact)
	r.GET("/api/content/:section", api.GetSection)
	r.GET("/api/stages/:type", api.GetStage)
	r.POST("/api/admin/login", api.Login)
	r.POST("/api/admin/logout", api.Logout)
	r.GET("/api/admin/verify", api.VerifySession)

	auth := r.Group("", api.RequireAdmin())
	auth.GET("/api/contacts", api.ListContacts)
	auth.DELETE("/api/contacts/:id", api.DeleteContact)
	auth.POST("/api/content/:section", api.PutSection)

	return api, r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r http.Handler) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{"password": testAdminPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the login response")
	}
	return resp.Token
}
