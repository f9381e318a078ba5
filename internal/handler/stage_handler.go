package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/db"
	"github.com/stagefolio/internal/service"
)

// GetStage serves one internship record by type. Known types never 404: a
// never-written type answers with its placeholder document.
func (a *API) GetStage(c *gin.Context) {
	doc, err := a.stages.Get(c.Param("type"))
	if err != nil {
		if errors.Is(err, service.ErrStageInvalidInput) {
			respondError(c, http.StatusBadRequest, "stage type is required")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListStages serves every stored stage record.
func (a *API) ListStages(c *gin.Context) {
	stages, err := a.stages.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

type stageRequest struct {
	StageType    string       `json:"stage_type"`
	Company      string       `json:"company"`
	Position     string       `json:"position"`
	Period       string       `json:"period"`
	Sector       string       `json:"sector"`
	Description  string       `json:"description"`
	Tools        []string     `json:"tools"`
	Missions     []db.Mission `json:"missions"`
	Skills       []string     `json:"skills"`
	Achievements []string     `json:"achievements"`
	Images       []string     `json:"images"`
	Learnings    string       `json:"learnings"`
}

// PutStage replaces the record stored under the path's stage type. Admin
// only. The type may also arrive in the body (the dashboard posts to
// /api/admin/stages without a path key); the path wins when both are set.
func (a *API) PutStage(c *gin.Context) {
	var req stageRequest
	if !bindJSON(c, &req, "invalid stage payload") {
		return
	}

	stageType := strings.TrimSpace(c.Param("type"))
	if stageType == "" {
		stageType = req.StageType
	}

	doc, err := a.stages.Upsert(stageType, service.StageInput{
		Company:      req.Company,
		Position:     req.Position,
		Period:       req.Period,
		Sector:       req.Sector,
		Description:  req.Description,
		Tools:        req.Tools,
		Missions:     req.Missions,
		Skills:       req.Skills,
		Achievements: req.Achievements,
		Images:       req.Images,
		Learnings:    req.Learnings,
	})
	if err != nil {
		if errors.Is(err, service.ErrStageInvalidInput) {
			respondError(c, http.StatusBadRequest, "stage type is required")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
