package http

import (
	"encoding/json"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/review"
	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/response"
)

type ReviewHandler struct {
	requestService review.RequestService
}

func NewReviewHandler(requestService review.RequestService) *ReviewHandler {
	return &ReviewHandler{requestService: requestService}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req review.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review request opened", created)
}

func (h *ReviewHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, err := callerEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *ReviewHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request ID", nil)
		return
	}

	cancelled, err := h.requestService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review request cancelled", cancelled)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request ID", nil)
		return
	}

	req, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

func (h *ReviewHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListOpen(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *ReviewHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request ID", nil)
		return
	}

	req, err := h.requestService.StartReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review started", req)
}

func (h *ReviewHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid request ID", nil)
		return
	}
	responderID, err := callerUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req review.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id
	req.ResponderID = responderID

	resolved, err := h.requestService.Respond(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review request resolved", resolved)
}
