package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/vacation"
	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/response"
)

type VacationHandler struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) *VacationHandler {
	return &VacationHandler{vacationService: vacationService}
}

func (h *VacationHandler) Request(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req vacation.RequestVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	v, err := h.vacationService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation requested", v)
}

func (h *VacationHandler) MyVacations(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	vacations, err := h.vacationService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacations)
}

func (h *VacationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid vacation ID", nil)
		return
	}

	v, err := h.vacationService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation cancelled", v)
}

func (h *VacationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid vacation ID", nil)
		return
	}

	v, err := h.vacationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, v)
}

func (h *VacationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.vacationService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacations)
}

func (h *VacationHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	vacations, err := h.vacationService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacations)
}

func (h *VacationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.vacationService.Approve, "Vacation approved")
}

func (h *VacationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.vacationService.Reject, "Vacation rejected")
}

func (h *VacationHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req vacation.DecideVacationRequest) (vacation.VacationResponse, error),
	message string,
) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid vacation ID", nil)
		return
	}
	approverID, err := callerUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req vacation.DecideVacationRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	req.ID = id
	req.ApproverID = approverID

	v, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, v)
}

func (h *VacationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid vacation ID", nil)
		return
	}

	v, err := h.vacationService.Complete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation completed", v)
}
