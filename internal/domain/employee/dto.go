package employee

import (
	"time"

	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID             *int64 `json:"user_id"`
	RegistrationNumber string `json:"registration_number"`
	JobTitle           string `json:"job_title"`
	Department         string `json:"department"`
	AdmissionDate      string `json:"admission_date"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RegistrationNumber) {
		errs = append(errs, validator.ValidationError{Field: "registration_number", Message: "Registration number is required"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "Job title is required"})
	}
	if _, ok := validator.ParseDate(r.AdmissionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "admission_date", Message: "Admission date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            int64   `json:"-"`
	JobTitle      *string `json:"job_title"`
	Department    *string `json:"department"`
	AdmissionDate *string `json:"admission_date"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AdmissionDate != nil {
		if _, ok := validator.ParseDate(*r.AdmissionDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "admission_date", Message: "Admission date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustHourBankRequest struct {
	EmployeeID int64  `json:"-"`
	Minutes    int    `json:"minutes"`
	Mode       string `json:"mode"` // "set" or "add"
}

func (r AdjustHourBankRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Mode, []string{"set", "add"}) {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "Mode must be one of: set, add"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                 int64  `json:"id"`
	UserID             *int64 `json:"user_id,omitempty"`
	RegistrationNumber string `json:"registration_number"`
	JobTitle           string `json:"job_title"`
	Department         string `json:"department"`
	AdmissionDate      string `json:"admission_date"`
	HourBankMinutes    int    `json:"hour_bank_minutes"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID,
		UserID:             e.UserID,
		RegistrationNumber: e.RegistrationNumber,
		JobTitle:           e.JobTitle,
		Department:         e.Department,
		AdmissionDate:      e.AdmissionDate.Format(validator.DateLayout),
		HourBankMinutes:    e.HourBankMinutes,
	}
}

func ToResponseList(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}

// ParseAdmissionDate converts the validated wire date.
func (r CreateEmployeeRequest) ParseAdmissionDate() time.Time {
	t, _ := validator.ParseDate(r.AdmissionDate)
	return t
}
