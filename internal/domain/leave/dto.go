package leave

import (
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	EmployeeID int64  `json:"-"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason"`
}

func (r RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.ParseDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Kind, []string{string(KindCompensatory), string(KindAllowance), string(KindHourBank)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be one of: compensatory, allowance, hour_bank"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r RequestLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.ParseDate(r.StartDate)
	end, _ := validator.ParseDate(r.EndDate)
	return start, end
}

type DecideLeaveRequest struct {
	ID         int64  `json:"-"`
	ApproverID int64  `json:"-"`
	Note       string `json:"note"`
}

type LeaveResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Kind       Kind   `json:"kind"`
	Status     Status `json:"status"`
	Reason     string `json:"reason"`
	Note       string `json:"note,omitempty"`
	ApproverID *int64 `json:"approver_id,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format(validator.DateLayout),
		EndDate:    l.EndDate.Format(validator.DateLayout),
		Kind:       l.Kind,
		Status:     l.Status,
		Reason:     l.Reason,
		Note:       l.Note,
		ApproverID: l.ApproverID,
	}
}

func ToResponseList(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, ToResponse(l))
	}
	return out
}
