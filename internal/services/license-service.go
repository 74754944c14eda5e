package services

import (
	"context"
	"time"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/utils"
)

type LicenseServiceInterface interface {
	GetLicenses(ctx context.Context, params utils.ListParams) ([]entities.License, uint64, error)
	FindLicense(ctx context.Context, id string) (*entities.License, error)
	CreateLicense(ctx context.Context, d dto.CreateLicenseDTO) (*entities.License, error)
	UpdateLicense(ctx context.Context, id string, d dto.UpdateLicenseDTO) (*entities.License, error)
	DeleteLicense(ctx context.Context, id string) error
	GetExpiringLicenses(ctx context.Context, days int) ([]entities.License, error)
}

type LicenseService struct {
	repo repositories.LicenseRepositoryInterface
}

func NewLicenseService(repo repositories.LicenseRepositoryInterface) LicenseServiceInterface {
	return &LicenseService{repo: repo}
}

func (s *LicenseService) GetLicenses(ctx context.Context, params utils.ListParams) ([]entities.License, uint64, error) {
	return s.repo.GetLicenses(ctx, params)
}

func (s *LicenseService) FindLicense(ctx context.Context, id string) (*entities.License, error) {
	return s.repo.FindLicense(ctx, id)
}

func (s *LicenseService) CreateLicense(ctx context.Context, d dto.CreateLicenseDTO) (*entities.License, error) {
	return s.repo.CreateLicense(ctx, d)
}

func (s *LicenseService) UpdateLicense(ctx context.Context, id string, d dto.UpdateLicenseDTO) (*entities.License, error) {
	return s.repo.UpdateLicense(ctx, id, d)
}

func (s *LicenseService) DeleteLicense(ctx context.Context, id string) error {
	return s.repo.DeleteLicense(ctx, id)
}

func (s *LicenseService) GetExpiringLicenses(ctx context.Context, days int) ([]entities.License, error) {
	return s.repo.GetExpiringLicenses(ctx, time.Duration(days)*24*time.Hour)
}
