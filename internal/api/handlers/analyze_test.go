package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/api"
	"github.com/clauselens/clauselens/internal/domain"
	"github.com/clauselens/clauselens/internal/service"
)

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input service.AnalyzeInput) (*domain.AnalysisReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisReport), args.Error(1)
}

func (m *MockAnalysisService) Compare(ctx context.Context, oldText, newText *domain.ExtractedText, normalize bool) (*domain.ComparisonResult, error) {
	args := m.Called(ctx, oldText, newText, normalize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonResult), args.Error(1)
}

func TestAnalyzeHandler_Analyze_Success(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	report := &domain.AnalysisReport{ID: "report-123"}
	mockSvc.On("Analyze", mock.Anything, mock.MatchedBy(func(input service.AnalyzeInput) bool {
		return input.Text != nil && strings.Contains(input.Text.Content, "terminate")
	})).Return(report, nil)

	body := `{"content":"1. Termination. Either party may terminate this agreement with 30 days notice."}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result api.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "report-123", data["id"])

	mockSvc.AssertExpectations(t)
}

func TestAnalyzeHandler_Analyze_MissingContent(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Analyze")
}

func TestAnalyzeHandler_Analyze_InvalidBody(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`not json`))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeHandler_Analyze_DocumentTooLong(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 10)

	body := `{"content":"this document body exceeds ten characters"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Analyze")
}

func TestAnalyzeHandler_Analyze_ServiceError(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	mockSvc.On("Analyze", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyDocument)

	body := `{"content":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result api.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result.Error, "empty")
}

func TestAnalyzeHandler_Compare_Success(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	result := &domain.ComparisonResult{
		Added: []domain.Clause{{Title: "Indemnity", Content: "x", Category: domain.CategoryPenalties}},
	}
	mockSvc.On("Compare", mock.Anything, mock.Anything, mock.Anything, false).Return(result, nil)

	body := `{"old":{"content":"1. Payment. Fees are due monthly."},"new":{"content":"1. Payment. Fees are due monthly.\n\n2. Indemnity. Each party shall indemnify the other."}}`
	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Compare(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAnalyzeHandler_Compare_MissingDocuments(t *testing.T) {
	mockSvc := new(MockAnalysisService)
	handler := NewAnalyzeHandler(mockSvc, 0)

	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{"old":{"content":"only one side"}}`))
	w := httptest.NewRecorder()

	handler.Compare(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Compare")
}
