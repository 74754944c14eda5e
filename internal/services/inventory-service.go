package services

import (
	"context"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/utils"
)

type InventoryServiceInterface interface {
	GetInventories(ctx context.Context, params utils.ListParams) ([]entities.Inventory, uint64, error)
	FindInventory(ctx context.Context, id string) (*entities.Inventory, error)
	CreateInventory(ctx context.Context, d dto.CreateInventoryDTO) (*entities.Inventory, error)
	UpdateInventory(ctx context.Context, id string, d dto.UpdateInventoryDTO) (*entities.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
}

type InventoryService struct {
	repo          repositories.InventoryRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
}

func NewInventoryService(
	repo repositories.InventoryRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
) InventoryServiceInterface {
	return &InventoryService{repo: repo, equipmentRepo: equipmentRepo}
}

func (s *InventoryService) GetInventories(ctx context.Context, params utils.ListParams) ([]entities.Inventory, uint64, error) {
	return s.repo.GetInventories(ctx, params)
}

func (s *InventoryService) FindInventory(ctx context.Context, id string) (*entities.Inventory, error) {
	return s.repo.FindInventory(ctx, id)
}

func (s *InventoryService) CreateInventory(ctx context.Context, d dto.CreateInventoryDTO) (*entities.Inventory, error) {
	// L'équipement référencé doit exister au moment de la saisie.
	if _, err := s.equipmentRepo.FindEquipment(ctx, d.EquipmentID); err != nil {
		return nil, err
	}
	return s.repo.CreateInventory(ctx, d)
}

func (s *InventoryService) UpdateInventory(ctx context.Context, id string, d dto.UpdateInventoryDTO) (*entities.Inventory, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, d.EquipmentID); err != nil {
		return nil, err
	}
	return s.repo.UpdateInventory(ctx, id, d)
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id string) error {
	return s.repo.DeleteInventory(ctx, id)
}
