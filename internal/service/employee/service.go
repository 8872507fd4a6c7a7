package employee

import (
	"context"
	"fmt"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/validator"
)

type Service struct {
	employee.EmployeeRepository
}

func NewService(employeeRepository employee.EmployeeRepository) *Service {
	return &Service{EmployeeRepository: employeeRepository}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		UserID:             req.UserID,
		RegistrationNumber: req.RegistrationNumber,
		JobTitle:           req.JobTitle,
		Department:         req.Department,
		AdmissionDate:      req.ParseAdmissionDate(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}

func (s *Service) GetByUserID(ctx context.Context, userID int64) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by user: %w", err)
	}
	return employee.ToResponse(e), nil
}

func (s *Service) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.ToResponseList(employees), nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if req.JobTitle != nil {
		e.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.AdmissionDate != nil {
		d, _ := validator.ParseDate(*req.AdmissionDate)
		e.AdmissionDate = d
	}

	if err := s.EmployeeRepository.Update(ctx, e); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// AdjustHourBank applies an admin balance adjustment, either overwriting the
// balance or adding a signed delta. Deltas that would drive the balance
// negative are rejected.
func (s *Service) AdjustHourBank(ctx context.Context, req employee.AdjustHourBankRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	switch req.Mode {
	case "set":
		if req.Minutes < 0 {
			return employee.EmployeeResponse{}, employee.ErrInsufficientHourBank
		}
		if err := s.EmployeeRepository.SetHourBank(ctx, req.EmployeeID, req.Minutes); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to set hour bank: %w", err)
		}
	case "add":
		if _, err := s.EmployeeRepository.AdjustHourBank(ctx, req.EmployeeID, req.Minutes); err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to adjust hour bank: %w", err)
		}
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}
