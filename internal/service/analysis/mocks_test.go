package analysis

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

var _ analysisRepo = &analysisRepoMock{}

type analysisRepoMock struct {
	CreateFunc      func(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error)
	GetByFormIDFunc func(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error)

	calls struct {
		Create []struct {
			Analysis *domain.Analysis
		}
		GetByFormID []struct {
			FormID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *analysisRepoMock) Create(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error) {
	if mock.CreateFunc == nil {
		panic("analysisRepoMock.CreateFunc: method is nil but analysisRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Analysis *domain.Analysis
	}{Analysis: a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *analysisRepoMock) CreateCalls() []struct {
	Analysis *domain.Analysis
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *analysisRepoMock) GetByFormID(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error) {
	if mock.GetByFormIDFunc == nil {
		panic("analysisRepoMock.GetByFormIDFunc: method is nil but analysisRepo.GetByFormID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByFormID = append(mock.calls.GetByFormID, struct {
		FormID uuid.UUID
	}{FormID: formID})
	mock.lock.Unlock()
	return mock.GetByFormIDFunc(ctx, formID)
}

func (mock *analysisRepoMock) GetByFormIDCalls() []struct {
	FormID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByFormID
}

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	GetByIDFunc func(ctx context.Context, formID uuid.UUID) (*domain.Form, error)

	calls struct {
		GetByID []struct {
			FormID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *formRepoMock) GetByID(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	if mock.GetByIDFunc == nil {
		panic("formRepoMock.GetByIDFunc: method is nil but formRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		FormID uuid.UUID
	}{FormID: formID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, formID)
}

func (mock *formRepoMock) GetByIDCalls() []struct {
	FormID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	ListByFormIDFunc func(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)

	calls struct {
		ListByFormID []struct {
			FormID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *responseRepoMock) ListByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	if mock.ListByFormIDFunc == nil {
		panic("responseRepoMock.ListByFormIDFunc: method is nil but responseRepo.ListByFormID was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByFormID = append(mock.calls.ListByFormID, struct {
		FormID uuid.UUID
	}{FormID: formID})
	mock.lock.Unlock()
	return mock.ListByFormIDFunc(ctx, formID)
}

func (mock *responseRepoMock) ListByFormIDCalls() []struct {
	FormID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByFormID
}

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error)

	calls struct {
		Analyze []struct {
			Responses []*domain.Response
		}
	}
	lock sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	mock.lock.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, struct {
		Responses []*domain.Response
	}{Responses: responses})
	mock.lock.Unlock()
	return mock.AnalyzeFunc(ctx, responses)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Responses []*domain.Response
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Analyze
}
