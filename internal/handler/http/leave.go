package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/leave"
	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/response"
)

type LeaveHandler struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

func (h *LeaveHandler) Request(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.RequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	l, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave requested", l)
}

func (h *LeaveHandler) MyLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}

	l, err := h.leaveService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave cancelled", l)
}

func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}

	l, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

func (h *LeaveHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	leaves, err := h.leaveService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve, "Leave approved")
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject, "Leave rejected")
}

func (h *LeaveHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error),
	message string,
) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid leave ID", nil)
		return
	}
	approverID, err := callerUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.DecideLeaveRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	req.ID = id
	req.ApproverID = approverID

	l, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, l)
}
