package review

import (
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

const (
	descriptionMin = 10
	descriptionMax = 1000
)

type CreateRequestRequest struct {
	EmployeeID  int64  `json:"-"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	kinds := []string{
		string(KindPunchAdjustment), string(KindVacationReview), string(KindLeaveReview),
		string(KindOvertimeReview), string(KindHourBankReview), string(KindOther),
	}
	if !validator.IsInSlice(r.Kind, kinds) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Unknown request kind"})
	}
	if len(r.Description) < descriptionMin || len(r.Description) > descriptionMax {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "Description must be between 10 and 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RespondRequest struct {
	ID          int64  `json:"-"`
	ResponderID int64  `json:"-"`
	Response    string `json:"response"`
	Accept      bool   `json:"accept"`
}

type RequestResponse struct {
	ID          int64  `json:"id"`
	EmployeeID  int64  `json:"employee_id"`
	CreatedAt   string `json:"created_at"`
	Kind        Kind   `json:"kind"`
	Status      Status `json:"status"`
	Description string `json:"description"`
	Response    string `json:"response,omitempty"`
	ResponderID *int64 `json:"responder_id,omitempty"`
	RespondedAt string `json:"responded_at,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		CreatedAt:   r.CreatedAt.Format(validator.DateTimeLayout),
		Kind:        r.Kind,
		Status:      r.Status,
		Description: r.Description,
		Response:    r.Response,
		ResponderID: r.ResponderID,
	}
	if r.RespondedAt != nil {
		resp.RespondedAt = r.RespondedAt.Format(validator.DateTimeLayout)
	}
	return resp
}

func ToResponseList(requests []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToResponse(r))
	}
	return out
}
