package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/overtime"
	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/response"
)

type OvertimeHandler struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) *OvertimeHandler {
	return &OvertimeHandler{overtimeService: overtimeService}
}

func (h *OvertimeHandler) Register(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req overtime.RegisterOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	o, err := h.overtimeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime registered", o)
}

func (h *OvertimeHandler) MyOvertimes(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overtimes, err := h.overtimeService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtimes)
}

func (h *OvertimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid overtime ID", nil)
		return
	}

	o, err := h.overtimeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, o)
}

func (h *OvertimeHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	overtimes, err := h.overtimeService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtimes)
}

func (h *OvertimeHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	overtimes, err := h.overtimeService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtimes)
}

func (h *OvertimeHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.overtimeService.Approve, "Overtime approved")
}

func (h *OvertimeHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.overtimeService.Reject, "Overtime rejected")
}

func (h *OvertimeHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req overtime.DecideOvertimeRequest) (overtime.OvertimeResponse, error),
	message string,
) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid overtime ID", nil)
		return
	}
	approverID, err := callerUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req overtime.DecideOvertimeRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	req.ID = id
	req.ApproverID = approverID

	o, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, o)
}

func (h *OvertimeHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid overtime ID", nil)
		return
	}

	o, err := h.overtimeService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime marked as paid", o)
}

func (h *OvertimeHandler) MarkCompensated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid overtime ID", nil)
		return
	}

	o, err := h.overtimeService.MarkCompensated(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime marked as compensated", o)
}
