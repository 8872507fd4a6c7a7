package http

import (
	"encoding/json"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/timeentry"
	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/response"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type TimeEntryHandler struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

func (h *TimeEntryHandler) Punch(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timeentry.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	entry, err := h.timeEntryService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", entry)
}

// MyEntries lists the caller's punches, optionally filtered to one day with
// ?date=YYYY-MM-DD or to a date span with ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *TimeEntryHandler) MyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.listForEmployee(w, r, employeeID)
}

func (h *TimeEntryHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}
	h.listForEmployee(w, r, id)
}

func (h *TimeEntryHandler) listForEmployee(w http.ResponseWriter, r *http.Request, employeeID int64) {
	query := r.URL.Query()

	if dateParam := query.Get("date"); dateParam != "" {
		date, ok := validator.ParseDate(dateParam)
		if !ok {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}
		entries, err := h.timeEntryService.ListByEmployeeAndDate(r.Context(), employeeID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, entries)
		return
	}

	if fromParam, toParam := query.Get("from"), query.Get("to"); fromParam != "" || toParam != "" {
		from, okFrom := validator.ParseDate(fromParam)
		to, okTo := validator.ParseDate(toParam)
		if !okFrom || !okTo || to.Before(from) {
			response.BadRequest(w, "Range must be from=YYYY-MM-DD&to=YYYY-MM-DD with from <= to", nil)
			return
		}
		// End date is inclusive
		entries, err := h.timeEntryService.ListByEmployeeAndRange(r.Context(), employeeID, from, to.AddDate(0, 0, 1))
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, entries)
		return
	}

	entries, err := h.timeEntryService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func (h *TimeEntryHandler) ListUnvalidated(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeEntryService.ListUnvalidated(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func (h *TimeEntryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid time entry ID", nil)
		return
	}

	entry, err := h.timeEntryService.Validate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry validated", entry)
}

func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid time entry ID", nil)
		return
	}

	if err := h.timeEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
