package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/attendly/feedback-backend/internal/domain"
	"github.com/attendly/feedback-backend/internal/service/form"
)

// eventDateLayout is the wire format for event dates.
const eventDateLayout = "2006-01-02"

// formService defines the minimal interface needed by FormHandler.
type formService interface {
	CreateForm(ctx context.Context, input form.CreateFormInput) (*domain.Form, error)
	GetForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
	UpdateForm(ctx context.Context, input form.UpdateFormInput) (*domain.Form, error)
	DeleteForm(ctx context.Context, input form.DeleteFormInput) error
	SubmitResponse(ctx context.Context, input form.SubmitResponseInput) (*domain.Response, error)
	ListResponses(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
}

// FormHandler serves feedback form and response REST endpoints.
type FormHandler struct {
	svc formService
	log *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc formService, logger *slog.Logger) *FormHandler {
	return &FormHandler{svc: svc, log: logger.With("handler", "form")}
}

type createFormRequest struct {
	EventName   string  `json:"event_name"`
	EventDate   *string `json:"event_date"`
	Description *string `json:"description"`
}

type submitResponseRequest struct {
	AttendeeName *string `json:"attendee_name"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
}

type formResponse struct {
	ID          string  `json:"id"`
	EventName   string  `json:"event_name"`
	EventDate   *string `json:"event_date"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type responseResponse struct {
	ID           string  `json:"id"`
	FormID       string  `json:"form_id"`
	AttendeeName *string `json:"attendee_name"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
	SubmittedAt  string  `json:"submitted_at"`
}

// Create handles POST /api/v1/forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "event_date must be YYYY-MM-DD")
		return
	}

	created, err := h.svc.CreateForm(r.Context(), form.CreateFormInput{
		EventName:   req.EventName,
		EventDate:   eventDate,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFormResponse(created))
}

// Get handles GET /api/v1/forms/{id}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	f, err := h.svc.GetForm(r.Context(), formID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(f))
}

// Update handles PUT /api/v1/forms/{id}. Only fields present in the body
// change; an explicit null clears an optional field.
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := form.UpdateFormInput{FormID: formID}

	if msg, present := raw["event_name"]; present {
		var name string
		if err := json.Unmarshal(msg, &name); err != nil {
			writeError(w, http.StatusBadRequest, "event_name must be a string")
			return
		}
		input.EventName = &name
	}

	if msg, present := raw["event_date"]; present {
		var dateStr *string
		if err := json.Unmarshal(msg, &dateStr); err != nil {
			writeError(w, http.StatusBadRequest, "event_date must be a string or null")
			return
		}
		if dateStr == nil {
			input.ClearEventDate = true
		} else {
			date, err := parseEventDate(dateStr)
			if err != nil {
				writeError(w, http.StatusBadRequest, "event_date must be YYYY-MM-DD")
				return
			}
			input.EventDate = date
		}
	}

	if msg, present := raw["description"]; present {
		var desc *string
		if err := json.Unmarshal(msg, &desc); err != nil {
			writeError(w, http.StatusBadRequest, "description must be a string or null")
			return
		}
		if desc == nil {
			input.ClearDescription = true
		} else {
			input.Description = desc
		}
	}

	updated, err := h.svc.UpdateForm(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(updated))
}

// Delete handles DELETE /api/v1/forms/{id}.
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteForm(r.Context(), form.DeleteFormInput{FormID: formID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitResponse handles POST /api/v1/forms/{id}/responses.
func (h *FormHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	var req submitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.SubmitResponse(r.Context(), form.SubmitResponseInput{
		FormID:       formID,
		AttendeeName: req.AttendeeName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponseResponse(created))
}

// ListResponses handles GET /api/v1/forms/{id}/responses.
func (h *FormHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	formID, ok := formIDFromPath(w, r)
	if !ok {
		return
	}

	responses, err := h.svc.ListResponses(r.Context(), formID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]responseResponse, 0, len(responses))
	for _, resp := range responses {
		out = append(out, toResponseResponse(resp))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *FormHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// formIDFromPath parses the {id} path segment. Writes a 400 and returns
// false on a malformed ID.
func formIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form id")
		return uuid.Nil, false
	}
	return id, true
}

func parseEventDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	date, err := time.Parse(eventDateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func toFormResponse(f *domain.Form) formResponse {
	var eventDate *string
	if f.EventDate != nil {
		s := f.EventDate.Format(eventDateLayout)
		eventDate = &s
	}
	return formResponse{
		ID:          f.ID.String(),
		EventName:   f.EventName,
		EventDate:   eventDate,
		Description: f.Description,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   f.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponseResponse(resp *domain.Response) responseResponse {
	return responseResponse{
		ID:           resp.ID.String(),
		FormID:       resp.FormID.String(),
		AttendeeName: resp.AttendeeName,
		Rating:       resp.Rating,
		Comment:      resp.Comment,
		SubmittedAt:  resp.SubmittedAt.Format(time.RFC3339),
	}
}
