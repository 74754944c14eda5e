package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, d dto.LoginDTO) (string, *entities.User, error)
	Register(ctx context.Context, d dto.RegisterDTO) (*entities.User, error)
	GetProfile(ctx context.Context, userID string) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID string, d dto.UpdateProfileDTO) (*entities.User, error)
	ChangePassword(ctx context.Context, userID string, d dto.ChangePasswordDTO) error
	Logout(ctx context.Context, userID, sessionID string) error
	LogoutOtherSessions(ctx context.Context, userID, sessionID string) (int64, error)
}

type AuthService struct {
	userRepo    repositories.UserRepositoryInterface
	sessionRepo repositories.SessionRepositoryInterface
	tokens      service.SessionTokenService
	logger      *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	tokens service.SessionTokenService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login vérifie les identifiants et ouvre une session. Le même message
// d'erreur couvre email inconnu et mot de passe erroné.
func (s *AuthService) Login(ctx context.Context, d dto.LoginDTO) (string, *entities.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, d.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(d.Password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrAccountDisabled
	}

	sessionID := uuid.NewString()
	if err := s.sessionRepo.Register(ctx, user.ID, sessionID, s.tokens.TTL()); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, sessionID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("connexion réussie", zap.String("userID", user.ID))
	return token, user, nil
}

func (s *AuthService) Register(ctx context.Context, d dto.RegisterDTO) (*entities.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, d.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// L'auto-inscription crée toujours un compte "utilisateur" actif;
	// les autres rôles passent par la gestion des utilisateurs.
	created, err := s.userRepo.CreateUser(ctx, dto.CreateUserDTO{
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      "utilisateur",
		IsActive:  true,
	}, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("compte créé", zap.String("userID", created.ID))
	return created, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, d dto.UpdateProfileDTO) (*entities.User, error) {
	existing, err := s.userRepo.FindUser(ctx, userID)
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
	return s.userRepo.UpdateProfile(ctx, userID, d)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, d dto.ChangePasswordDTO) error {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(d.CurrentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("mot de passe modifié", zap.String("userID", userID))
	return nil
}

func (s *AuthService) Logout(ctx context.Context, userID, sessionID string) error {
	return s.sessionRepo.Delete(ctx, userID, sessionID)
}

// LogoutOtherSessions révoque toutes les sessions de l'utilisateur sauf
// la session courante.
func (s *AuthService) LogoutOtherSessions(ctx context.Context, userID, sessionID string) (int64, error) {
	revoked, err := s.sessionRepo.DeleteOthers(ctx, userID, sessionID)
	if err != nil {
		return 0, err
	}
	if revoked > 0 {
		s.logger.Info("sessions révoquées", zap.String("userID", userID), zap.Int64("count", revoked))
	}
	return revoked, nil
}
