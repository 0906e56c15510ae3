package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/clauselens/clauselens/internal/api"
	"github.com/clauselens/clauselens/internal/domain"
	"github.com/clauselens/clauselens/internal/service"
)

type AnalysisRunner interface {
	Analyze(ctx context.Context, input service.AnalyzeInput) (*domain.AnalysisReport, error)
	Compare(ctx context.Context, oldText, newText *domain.ExtractedText, normalize bool) (*domain.ComparisonResult, error)
}

type AnalyzeHandler struct {
	svc              AnalysisRunner
	maxDocumentChars int
	validate         *validator.Validate
}

func NewAnalyzeHandler(svc AnalysisRunner, maxDocumentChars int) *AnalyzeHandler {
	return &AnalyzeHandler{
		svc:              svc,
		maxDocumentChars: maxDocumentChars,
		validate:         validator.New(),
	}
}

type MetadataRequest struct {
	PageCount      int `json:"page_count,omitempty"`
	CharacterCount int `json:"character_count,omitempty"`
}

type DocumentRequest struct {
	Content    string           `json:"content" validate:"required"`
	Paragraphs []string         `json:"paragraphs,omitempty"`
	Metadata   *MetadataRequest `json:"metadata,omitempty"`
}

type AnalyzeRequest struct {
	DocumentRequest
	Normalize bool `json:"normalize,omitempty"`
}

type CompareRequest struct {
	Old       DocumentRequest `json:"old" validate:"required"`
	New       DocumentRequest `json:"new" validate:"required"`
	Normalize bool            `json:"normalize,omitempty"`
}

func (r *DocumentRequest) toExtractedText() *domain.ExtractedText {
	text := &domain.ExtractedText{
		Content:    r.Content,
		Paragraphs: r.Paragraphs,
	}
	if r.Metadata != nil {
		text.Metadata = domain.DocumentMetadata{
			PageCount:      r.Metadata.PageCount,
			CharacterCount: r.Metadata.CharacterCount,
		}
	}
	if text.Metadata.CharacterCount == 0 {
		text.Metadata.CharacterCount = len(r.Content)
	}
	return text
}

// Analyze runs the full analysis pipeline on a submitted document.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.Error(w, http.StatusBadRequest, "content is required")
		return
	}

	if h.maxDocumentChars > 0 && len(req.Content) > h.maxDocumentChars {
		api.HandleError(w, domain.ErrDocumentTooLong)
		return
	}

	report, err := h.svc.Analyze(r.Context(), service.AnalyzeInput{
		Text:      req.toExtractedText(),
		Normalize: req.Normalize,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, report)
}

// Compare detects clause-level differences between two document revisions.
func (h *AnalyzeHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.Error(w, http.StatusBadRequest, "old.content and new.content are required")
		return
	}

	if h.maxDocumentChars > 0 && (len(req.Old.Content) > h.maxDocumentChars || len(req.New.Content) > h.maxDocumentChars) {
		api.HandleError(w, domain.ErrDocumentTooLong)
		return
	}

	result, err := h.svc.Compare(r.Context(), req.Old.toExtractedText(), req.New.toExtractedText(), req.Normalize)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}
