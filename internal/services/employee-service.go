package services

import (
	"context"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/utils"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, params utils.ListParams) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, d dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, d dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeService struct {
	repo repositories.EmployeeRepositoryInterface
}

func NewEmployeeService(repo repositories.EmployeeRepositoryInterface) EmployeeServiceInterface {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, params utils.ListParams) ([]entities.Employee, uint64, error) {
	return s.repo.GetEmployees(ctx, params)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	return s.repo.FindEmployee(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, d dto.CreateEmployeeDTO) (*entities.Employee, error) {
	return s.repo.CreateEmployee(ctx, d)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, d dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	return s.repo.UpdateEmployee(ctx, id, d)
}

// DeleteEmployee supprime la fiche. Les équipements qui référencent cet
// employé gardent leur assignedTo: la référence est faible.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	return s.repo.DeleteEmployee(ctx, id)
}
