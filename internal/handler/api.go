package handler

import (
	"github.com/stagefolio/internal/config"
	"github.com/stagefolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	sessions  *service.SessionService
	contacts  *service.ContactService
	personal  *service.PersonalInfoService
	stages    *service.StageService
	sections  *service.ContentService
	images    *service.ImageService
	analytics *service.AnalyticsService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:        gdb,
		sessions:  service.NewSessionService(gdb, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionTTL),
		contacts:  service.NewContactService(gdb),
		personal:  service.NewPersonalInfoService(gdb),
		stages:    service.NewStageService(gdb),
		sections:  service.NewContentService(gdb),
		images:    service.NewImageService(gdb),
		analytics: service.NewAnalyticsService(gdb),
	}
}

// Sessions exposes the session authority for startup maintenance.
func (a *API) Sessions() *service.SessionService {
	return a.sessions
}
