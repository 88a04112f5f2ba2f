package form

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	CreateFunc  func(ctx context.Context, form *domain.Form) (*domain.Form, error)
	GetByIDFunc func(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
	UpdateFunc  func(ctx context.Context, formID uuid.UUID, params domain.FormUpdateParams) (*domain.Form, error)
	DeleteFunc  func(ctx context.Context, formID uuid.UUID) error

	calls struct {
		Create []struct {
			Form *domain.Form
		}
		GetByID []struct {
			FormID uuid.UUID
		}
		Update []struct {
			FormID uuid.UUID
			Params domain.FormUpdateParams
		}
		Delete []struct {
			FormID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *formRepoMock) Create(ctx context.Context, form *domain.Form) (*domain.Form, error) {
	if mock.CreateFunc == nil {
		panic("formRepoMock.CreateFunc: method is nil but formRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Form *domain.Form
	}{Form: form})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, form)
}

func (mock *formRepoMock) CreateCalls() []struct {
	Form *domain.Form
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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

func (mock *formRepoMock) Update(ctx context.Context, formID uuid.UUID, params domain.FormUpdateParams) (*domain.Form, error) {
	if mock.UpdateFunc == nil {
		panic("formRepoMock.UpdateFunc: method is nil but formRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		FormID uuid.UUID
		Params domain.FormUpdateParams
	}{FormID: formID, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, formID, params)
}

func (mock *formRepoMock) UpdateCalls() []struct {
	FormID uuid.UUID
	Params domain.FormUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *formRepoMock) Delete(ctx context.Context, formID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("formRepoMock.DeleteFunc: method is nil but formRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		FormID uuid.UUID
	}{FormID: formID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, formID)
}

func (mock *formRepoMock) DeleteCalls() []struct {
	FormID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	CreateFunc       func(ctx context.Context, resp *domain.Response) (*domain.Response, error)
	ListByFormIDFunc func(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)

	calls struct {
		Create []struct {
			Resp *domain.Response
		}
		ListByFormID []struct {
			FormID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *responseRepoMock) Create(ctx context.Context, resp *domain.Response) (*domain.Response, error) {
	if mock.CreateFunc == nil {
		panic("responseRepoMock.CreateFunc: method is nil but responseRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Resp *domain.Response
	}{Resp: resp})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, resp)
}

func (mock *responseRepoMock) CreateCalls() []struct {
	Resp *domain.Response
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
