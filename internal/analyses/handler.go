package analyses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"detectia-backend/internal/documents"
	"detectia-backend/internal/shared/server/middleware"
	"detectia-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc     *Service
	DocRepo documents.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docRepo documents.Repo) *Handler {
	return &Handler{Svc: svc, DocRepo: docRepo}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/documents/:id/analyze", h.analyzeDocument)
}

type createAnalysisRequest struct {
	Text         string `json:"text"`
	AnalysisType string `json:"analysisType"`
	Filename     string `json:"filename"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), AnalyzeInput{
		UserID:       userID,
		Text:         req.Text,
		AnalysisType: req.AnalysisType,
		Filename:     req.Filename,
	})
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}
	c.Set("documentId", documentID)

	doc, err := h.DocRepo.GetByID(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze document", nil)
		}
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), AnalyzeInput{
		UserID:       userID,
		Text:         doc.ExtractedText,
		AnalysisType: c.Query("type"),
		Filename:     doc.Filename,
		DocumentID:   doc.ID,
	})
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	result, err := h.Svc.Get(c.Request.Context(), userID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 200 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be between 1 and 200", nil)
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "offset must be zero or greater", nil)
			return
		}
		offset = parsed
	}

	results, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	if results == nil {
		results = []Result{}
	}

	respond.JSON(c, http.StatusOK, gin.H{"analyses": results})
}

func (h *Handler) respondAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTextTooShort):
		respond.Error(c, http.StatusBadRequest, "validation_error", "text must be at least 50 characters", []map[string]string{
			{"field": "text", "issue": "too_short"},
		})
	case errors.Is(err, ErrTextTooLong):
		respond.Error(c, http.StatusBadRequest, "validation_error", "text must be at most 10000 characters", []map[string]string{
			{"field": "text", "issue": "too_long"},
		})
	case errors.Is(err, ErrInvalidType):
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysisType must be quick or advanced", []map[string]string{
			{"field": "analysisType", "issue": "invalid"},
		})
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
	}
}
