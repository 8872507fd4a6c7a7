package response

import (
	"errors"
	"net/http"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/auth"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/leave"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/notification"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/overtime"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/review"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/timeentry"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/user"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/vacation"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenNotFound):
		Unauthorized(w, "Unknown refresh token")

	// User
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRegistrationNumberExists):
		Conflict(w, "Registration number already registered")
	case errors.Is(err, employee.ErrInsufficientHourBank):
		BadRequest(w, "Insufficient hour-bank balance", nil)
	case errors.Is(err, employee.ErrEmployeeHasNoLinkedAccount):
		BadRequest(w, "Employee has no linked account", nil)

	// Vacation
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, vacation.ErrInsufficientNotice):
		BadRequest(w, "Vacation must be requested at least 30 days in advance", nil)
	case errors.Is(err, vacation.ErrOverlappingVacation):
		Conflict(w, "Vacation overlaps an existing request")
	case errors.Is(err, vacation.ErrAcquisitionExceeded):
		BadRequest(w, "Exceeds the 30-day limit for the acquisition period", nil)
	case errors.Is(err, vacation.ErrNotApproved):
		Conflict(w, "Vacation is not approved")
	case errors.Is(err, vacation.ErrNotFinishedYet):
		Conflict(w, "Vacation has not finished yet")
	case errors.Is(err, vacation.ErrAlreadyStarted):
		Conflict(w, "Vacation already started and cannot be cancelled")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrStartInPast):
		BadRequest(w, "Start date must be in the future", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave overlaps an existing leave")

	// Overtime
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		BadRequest(w, "Start must be before end", nil)
	case errors.Is(err, overtime.ErrNonPositiveMinutes):
		BadRequest(w, "Overtime duration must be positive", nil)
	case errors.Is(err, overtime.ErrNotApproved):
		Conflict(w, "Overtime is not approved")
	case errors.Is(err, overtime.ErrNotForPay):
		Conflict(w, "Overtime is not flagged for pay")
	case errors.Is(err, overtime.ErrNotForCompensation):
		Conflict(w, "Overtime is not flagged for compensation")

	// Time entries
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Review requests
	case errors.Is(err, review.ErrRequestNotFound):
		NotFound(w, "Review request not found")
	case errors.Is(err, review.ErrNotOpen):
		Conflict(w, "Review request is not open")
	case errors.Is(err, review.ErrAlreadyTerminal):
		Conflict(w, "Review request already resolved")
	case errors.Is(err, review.ErrNotCancellable):
		Conflict(w, "Review request cannot be cancelled")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
