package overtime

import (
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type RegisterOvertimeRequest struct {
	EmployeeID      int64  `json:"-"`
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at"`
	Kind            string `json:"kind"`
	Justification   string `json:"justification"`
	ForCompensation bool   `json:"for_compensation"`
	ForPay          bool   `json:"for_pay"`
}

func (r RegisterOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDateTime(r.StartAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_at", Message: "Start must be in YYYY-MM-DD HH:MM:SS format"})
	}
	if _, ok := validator.ParseDateTime(r.EndAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_at", Message: "End must be in YYYY-MM-DD HH:MM:SS format"})
	}
	if !validator.IsInSlice(r.Kind, []string{string(KindNormal), string(KindNight), string(KindSunday), string(KindHoliday)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be one of: normal, night, sunday, holiday"})
	}
	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{Field: "justification", Message: "Justification is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r RegisterOvertimeRequest) Times() (time.Time, time.Time) {
	start, _ := validator.ParseDateTime(r.StartAt)
	end, _ := validator.ParseDateTime(r.EndAt)
	return start, end
}

type DecideOvertimeRequest struct {
	ID         int64  `json:"-"`
	ApproverID int64  `json:"-"`
	Note       string `json:"note"`
}

type OvertimeResponse struct {
	ID              int64  `json:"id"`
	EmployeeID      int64  `json:"employee_id"`
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at"`
	Minutes         int    `json:"minutes"`
	Kind            Kind   `json:"kind"`
	Status          Status `json:"status"`
	Justification   string `json:"justification"`
	ForCompensation bool   `json:"for_compensation"`
	ForPay          bool   `json:"for_pay"`
	ApproverID      *int64 `json:"approver_id,omitempty"`
	Note            string `json:"note,omitempty"`
}

func ToResponse(o Overtime) OvertimeResponse {
	return OvertimeResponse{
		ID:              o.ID,
		EmployeeID:      o.EmployeeID,
		StartAt:         o.StartAt.Format(validator.DateTimeLayout),
		EndAt:           o.EndAt.Format(validator.DateTimeLayout),
		Minutes:         o.Minutes,
		Kind:            o.Kind,
		Status:          o.Status,
		Justification:   o.Justification,
		ForCompensation: o.ForCompensation,
		ForPay:          o.ForPay,
		ApproverID:      o.ApproverID,
		Note:            o.Note,
	}
}

func ToResponseList(overtimes []Overtime) []OvertimeResponse {
	out := make([]OvertimeResponse, 0, len(overtimes))
	for _, o := range overtimes {
		out = append(out, ToResponse(o))
	}
	return out
}
