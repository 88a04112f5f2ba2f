package analysis

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

func newTestService(
	t *testing.T,
	analyses *analysisRepoMock,
	forms *formRepoMock,
	responses *responseRepoMock,
	ai *analyzerMock,
) *Service {
	t.Helper()
	return NewService(slog.Default(), analyses, forms, responses, ai)
}

// existingForm returns a formRepoMock that resolves every ID.
func existingForm() *formRepoMock {
	return &formRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return &domain.Form{ID: id, EventName: "Event"}, nil
		},
	}
}

func ptr(s string) *string { return &s }

func sampleResponses(formID uuid.UUID) []*domain.Response {
	return []*domain.Response{
		{ID: uuid.New(), FormID: formID, Rating: 5, Comment: ptr("Great content")},
		{ID: uuid.New(), FormID: formID, Rating: 4},
	}
}

func sampleGenerated() *domain.Analysis {
	return &domain.Analysis{
		OverallSentiment:   domain.SentimentPositive,
		PositiveHighlights: "Great content",
		CommonComplaints:   "None mentioned",
		ExecutiveSummary:   "Well received",
	}
}

// ---------------------------------------------------------------------------
// RequestAnalysis
// ---------------------------------------------------------------------------

func TestRequestAnalysis_GeneratesOnFirstRequest(t *testing.T) {
	t.Parallel()

	formID := uuid.New()
	analysisID := uuid.New()

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error) {
			stored := *a
			stored.ID = analysisID
			stored.AnalyzedAt = time.Now()
			return &stored, nil
		},
	}
	responsesMock := &responseRepoMock{
		ListByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Response, error) {
			return sampleResponses(id), nil
		},
	}
	aiMock := &analyzerMock{
		AnalyzeFunc: func(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
			return sampleGenerated(), nil
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	result, err := svc.RequestAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID != analysisID {
		t.Errorf("analysis ID: got %v, want %v", result.ID, analysisID)
	}
	if result.OverallSentiment != domain.SentimentPositive {
		t.Errorf("sentiment: got %q, want %q", result.OverallSentiment, domain.SentimentPositive)
	}
	if len(aiMock.AnalyzeCalls()) != 1 {
		t.Errorf("Analyze calls: got %d, want 1", len(aiMock.AnalyzeCalls()))
	}

	creates := analysesMock.CreateCalls()
	if len(creates) != 1 {
		t.Fatalf("Create calls: got %d, want 1", len(creates))
	}
	if creates[0].Analysis.FormID != formID {
		t.Errorf("stored form ID: got %v, want %v", creates[0].Analysis.FormID, formID)
	}
}

func TestRequestAnalysis_ServesCachedWithoutModelCall(t *testing.T) {
	t.Parallel()

	formID := uuid.New()
	cached := &domain.Analysis{
		ID:                 uuid.New(),
		FormID:             formID,
		OverallSentiment:   domain.SentimentNeutral,
		PositiveHighlights: "Some highlights",
		CommonComplaints:   "Some complaints",
		ExecutiveSummary:   "Summary",
		AnalyzedAt:         time.Now().Add(-time.Hour),
	}

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return cached, nil
		},
	}
	responsesMock := &responseRepoMock{}
	aiMock := &analyzerMock{}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	result, err := svc.RequestAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID != cached.ID {
		t.Errorf("expected the cached analysis, got %v", result.ID)
	}
	if len(aiMock.AnalyzeCalls()) != 0 {
		t.Errorf("model should not be called for a cached analysis, got %d calls", len(aiMock.AnalyzeCalls()))
	}
	if len(responsesMock.ListByFormIDCalls()) != 0 {
		t.Errorf("responses should not be fetched for a cached analysis, got %d calls", len(responsesMock.ListByFormIDCalls()))
	}
}

func TestRequestAnalysis_RepeatedCallsInvokeModelOnce(t *testing.T) {
	t.Parallel()

	formID := uuid.New()

	var stored *domain.Analysis
	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			if stored == nil {
				return nil, domain.ErrNotFound
			}
			return stored, nil
		},
		CreateFunc: func(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error) {
			s := *a
			s.ID = uuid.New()
			s.AnalyzedAt = time.Now()
			stored = &s
			return &s, nil
		},
	}
	responsesMock := &responseRepoMock{
		ListByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Response, error) {
			return sampleResponses(id), nil
		},
	}
	aiMock := &analyzerMock{
		AnalyzeFunc: func(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
			return sampleGenerated(), nil
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	first, err := svc.RequestAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("first request: unexpected error: %v", err)
	}
	second, err := svc.RequestAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("second request: unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("both requests should see the same analysis: %v vs %v", first.ID, second.ID)
	}
	if len(aiMock.AnalyzeCalls()) != 1 {
		t.Errorf("Analyze calls: got %d, want 1", len(aiMock.AnalyzeCalls()))
	}
}

func TestRequestAnalysis_FormNotFound(t *testing.T) {
	t.Parallel()

	formsMock := &formRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return nil, domain.ErrNotFound
		},
	}
	aiMock := &analyzerMock{}

	svc := newTestService(t, &analysisRepoMock{}, formsMock, &responseRepoMock{}, aiMock)

	_, err := svc.RequestAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected domain.ErrNotFound, got %v", err)
	}
	if len(aiMock.AnalyzeCalls()) != 0 {
		t.Errorf("model should not be called, got %d calls", len(aiMock.AnalyzeCalls()))
	}
}

func TestRequestAnalysis_NoResponses(t *testing.T) {
	t.Parallel()

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return nil, domain.ErrNotFound
		},
	}
	responsesMock := &responseRepoMock{
		ListByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Response, error) {
			return []*domain.Response{}, nil
		},
	}
	aiMock := &analyzerMock{}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	_, err := svc.RequestAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNoResponses) {
		t.Errorf("expected domain.ErrNoResponses, got %v", err)
	}
	if len(aiMock.AnalyzeCalls()) != 0 {
		t.Errorf("model should not be called, got %d calls", len(aiMock.AnalyzeCalls()))
	}
}

func TestRequestAnalysis_ModelFailureLeavesNothingStored(t *testing.T) {
	t.Parallel()

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return nil, domain.ErrNotFound
		},
	}
	responsesMock := &responseRepoMock{
		ListByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Response, error) {
			return sampleResponses(id), nil
		},
	}
	aiMock := &analyzerMock{
		AnalyzeFunc: func(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
			return nil, domain.ErrAIUnavailable
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	_, err := svc.RequestAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Errorf("expected domain.ErrAIUnavailable, got %v", err)
	}
	if len(analysesMock.CreateCalls()) != 0 {
		t.Errorf("nothing should be stored on model failure, got %d creates", len(analysesMock.CreateCalls()))
	}
}

func TestRequestAnalysis_CreationRaceServesWinner(t *testing.T) {
	t.Parallel()

	formID := uuid.New()
	winner := &domain.Analysis{
		ID:               uuid.New(),
		FormID:           formID,
		OverallSentiment: domain.SentimentNegative,
		AnalyzedAt:       time.Now(),
	}

	var getCalls int
	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			getCalls++
			// First read misses the cache; after the lost insert the
			// winner's row is visible.
			if getCalls == 1 {
				return nil, domain.ErrNotFound
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	responsesMock := &responseRepoMock{
		ListByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Response, error) {
			return sampleResponses(id), nil
		},
	}
	aiMock := &analyzerMock{
		AnalyzeFunc: func(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
			return sampleGenerated(), nil
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), responsesMock, aiMock)

	result, err := svc.RequestAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != winner.ID {
		t.Errorf("expected the winner's analysis, got %v", result.ID)
	}
}

func TestRequestAnalysis_NilID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &analysisRepoMock{}, &formRepoMock{}, &responseRepoMock{}, &analyzerMock{})

	_, err := svc.RequestAnalysis(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected domain.ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetAnalysis
// ---------------------------------------------------------------------------

func TestGetAnalysis_Success(t *testing.T) {
	t.Parallel()

	formID := uuid.New()
	stored := &domain.Analysis{
		ID:               uuid.New(),
		FormID:           formID,
		OverallSentiment: domain.SentimentPositive,
	}

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return stored, nil
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), &responseRepoMock{}, &analyzerMock{})

	result, err := svc.GetAnalysis(context.Background(), formID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != stored.ID {
		t.Errorf("analysis ID: got %v, want %v", result.ID, stored.ID)
	}
}

func TestGetAnalysis_NotYetAnalyzed(t *testing.T) {
	t.Parallel()

	analysesMock := &analysisRepoMock{
		GetByFormIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(t, analysesMock, existingForm(), &responseRepoMock{}, &analyzerMock{})

	_, err := svc.GetAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected domain.ErrNotFound, got %v", err)
	}
}

func TestGetAnalysis_FormNotFound(t *testing.T) {
	t.Parallel()

	formsMock := &formRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return nil, domain.ErrNotFound
		},
	}
	analysesMock := &analysisRepoMock{}

	svc := newTestService(t, analysesMock, formsMock, &responseRepoMock{}, &analyzerMock{})

	_, err := svc.GetAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected domain.ErrNotFound, got %v", err)
	}
	if len(analysesMock.GetByFormIDCalls()) != 0 {
		t.Errorf("analysis lookup should not happen, got %d calls", len(analysesMock.GetByFormIDCalls()))
	}
}
