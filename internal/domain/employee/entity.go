package employee

import "time"

type Employee struct {
	ID                 int64
	UserID             *int64
	RegistrationNumber string
	JobTitle           string
	Department         string
	AdmissionDate      time.Time
	HourBankMinutes    int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
