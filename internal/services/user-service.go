package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id string) (*entities.User, error)
	CreateUser(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	userRepo    repositories.UserRepositoryInterface
	sessionRepo repositories.SessionRepositoryInterface
	logger      *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{userRepo: userRepo, sessionRepo: sessionRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error) {
	return s.userRepo.GetUsers(ctx, params)
}

func (s *UserService) FindUser(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, d.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.CreateUser(ctx, d, string(hash))
	if err != nil {
		return nil, err
	}
	s.logger.Info("utilisateur créé", zap.String("userID", created.ID), zap.String("role", d.Role))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO) (*entities.User, error) {
	existing, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Email != existing.Email {
		if _, err := s.userRepo.FindUserByEmail(ctx, d.Email); err == nil {
			return nil, apperrors.ErrEmailTaken
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	// Mot de passe vide => inchangé.
	var hash string
	if d.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	updated, err := s.userRepo.UpdateUser(ctx, id, d, hash)
	if err != nil {
		return nil, err
	}

	// La désactivation révoque toutes les sessions ouvertes.
	if existing.IsActive && !updated.IsActive {
		if _, err := s.sessionRepo.DeleteOthers(ctx, id, ""); err != nil {
			s.logger.Warn("révocation des sessions échouée", zap.String("userID", id), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	if _, err := s.sessionRepo.DeleteOthers(ctx, id, ""); err != nil {
		s.logger.Warn("révocation des sessions échouée", zap.String("userID", id), zap.Error(err))
	}
	s.logger.Info("utilisateur supprimé", zap.String("userID", id))
	return nil
}
