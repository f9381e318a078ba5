package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/service"
)

// GetPersonalInfo serves the profile singleton, falling back to the
// placeholder profile before the first admin write.
func (a *API) GetPersonalInfo(c *gin.Context) {
	doc, err := a.personal.Get()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type personalInfoRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	LinkedIn     string   `json:"linkedin"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
	ProfileImage string   `json:"profile_image"`
}

// PutPersonalInfo replaces the profile singleton. Admin only.
func (a *API) PutPersonalInfo(c *gin.Context) {
	var req personalInfoRequest
	if !bindJSON(c, &req, "invalid personal info payload") {
		return
	}

	doc, err := a.personal.Upsert(service.PersonalInfoInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Description:  req.Description,
		Skills:       req.Skills,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrPersonalInfoInvalidInput) {
			respondError(c, http.StatusBadRequest, "name and email are required")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetSection serves one content section by key, never a 404: a never-written
// key answers with its placeholder. Public reads also carry the sanitized
// HTML rendering of the markdown content.
func (a *API) GetSection(c *gin.Context) {
	doc, err := a.sections.Get(c.Param("section"))
	if err != nil {
		if errors.Is(err, service.ErrSectionInvalidInput) {
			respondError(c, http.StatusBadRequest, "section key is required")
			return
		}
		respondStoreError(c, err)
		return
	}

	if html, err := service.RenderMarkdown(doc.Content); err == nil {
		doc.ContentHTML = html
	}

	c.JSON(http.StatusOK, doc)
}

type sectionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Goals   []string `json:"goals"`
	Images  []string `json:"images"`
}

// PutSection replaces one content section. Admin only.
func (a *API) PutSection(c *gin.Context) {
	var req sectionRequest
	if !bindJSON(c, &req, "invalid section payload") {
		return
	}

	doc, err := a.sections.Upsert(c.Param("section"), service.SectionInput{
		Title:   req.Title,
		Content: req.Content,
		Goals:   req.Goals,
		Images:  req.Images,
	})
	if err != nil {
		if errors.Is(err, service.ErrSectionInvalidInput) {
			respondError(c, http.StatusBadRequest, "section key is required")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// AdminContent aggregates everything the admin dashboard edits: the profile,
// all stored sections keyed by name and all stored stages keyed by type.
func (a *API) AdminContent(c *gin.Context) {
	info, err := a.personal.Get()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	sections, err := a.sections.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	sectionMap := make(map[string]service.SectionDocument, len(sections))
	for _, section := range sections {
		sectionMap[section.Section] = section
	}

	stages, err := a.stages.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	stageMap := make(map[string]service.StageDocument, len(stages))
	for _, stage := range stages {
		stageMap[stage.StageType] = stage
	}

	c.JSON(http.StatusOK, gin.H{
		"personal_info": info,
		"sections":      sectionMap,
		"stages":        stageMap,
	})
}

// Analytics serves the collection counts. Admin only.
func (a *API) Analytics(c *gin.Context) {
	overview, err := a.analytics.Overview()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Health reports liveness plus database reachability.
func (a *API) Health(c *gin.Context) {
	database := "connected"
	if sqlDB, err := a.db.DB(); err != nil {
		database = "unavailable"
	} else if err := sqlDB.Ping(); err != nil {
		database = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": database,
	})
}
