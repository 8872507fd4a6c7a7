package vacation

import (
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type RequestVacationRequest struct {
	EmployeeID        int64  `json:"-"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	BusinessDays      int    `json:"business_days"`
	AcquisitionPeriod int    `json:"acquisition_period"`
	Note              string `json:"note"`
	ThirteenthAdvance bool   `json:"thirteenth_advance"`
	SellOneThird      bool   `json:"sell_one_third"`
}

func (r RequestVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.ParseDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
	}
	if r.BusinessDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "business_days", Message: "Business days must be positive"})
	}
	if r.AcquisitionPeriod < 2000 || r.AcquisitionPeriod > 2200 {
		errs = append(errs, validator.ValidationError{Field: "acquisition_period", Message: "Acquisition period must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r RequestVacationRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.ParseDate(r.StartDate)
	end, _ := validator.ParseDate(r.EndDate)
	return start, end
}

type DecideVacationRequest struct {
	ID         int64  `json:"-"`
	ApproverID int64  `json:"-"`
	Note       string `json:"note"`
}

type VacationResponse struct {
	ID                int64  `json:"id"`
	EmployeeID        int64  `json:"employee_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	BusinessDays      int    `json:"business_days"`
	Status            Status `json:"status"`
	AcquisitionPeriod int    `json:"acquisition_period"`
	ApproverID        *int64 `json:"approver_id,omitempty"`
	Note              string `json:"note,omitempty"`
	ThirteenthAdvance bool   `json:"thirteenth_advance"`
	SellOneThird      bool   `json:"sell_one_third"`
}

func ToResponse(v Vacation) VacationResponse {
	return VacationResponse{
		ID:                v.ID,
		EmployeeID:        v.EmployeeID,
		StartDate:         v.StartDate.Format(validator.DateLayout),
		EndDate:           v.EndDate.Format(validator.DateLayout),
		BusinessDays:      v.BusinessDays,
		Status:            v.Status,
		AcquisitionPeriod: v.AcquisitionPeriod,
		ApproverID:        v.ApproverID,
		Note:              v.Note,
		ThirteenthAdvance: v.ThirteenthAdvance,
		SellOneThird:      v.SellOneThird,
	}
}

func ToResponseList(vacations []Vacation) []VacationResponse {
	out := make([]VacationResponse, 0, len(vacations))
	for _, v := range vacations {
		out = append(out, ToResponse(v))
	}
	return out
}
