package timeentry

import (
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID int64  `json:"-"`
	Kind       string `json:"kind"`
	Note       string `json:"note"`
}

func (r PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(KindShiftStart), string(KindLunchOut), string(KindLunchIn), string(KindShiftEnd)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be one of: shift_start, lunch_out, lunch_in, shift_end"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Kind       Kind   `json:"kind"`
	Note       string `json:"note,omitempty"`
	Validated  bool   `json:"validated"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Timestamp:  e.Timestamp.Format(validator.DateTimeLayout),
		Kind:       e.Kind,
		Note:       e.Note,
		Validated:  e.Validated,
	}
}

func ToResponseList(entries []TimeEntry) []TimeEntryResponse {
	out := make([]TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToResponse(e))
	}
	return out
}
