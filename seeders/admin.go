package seeders

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parc-info/internal/dto"
	"parc-info/internal/repositories"
)

const (
	defaultAdminEmail    = "admin@parc.info"
	defaultAdminPassword = "admin123"
)

// SeedAdmin crée le compte administrateur initial quand la table des
// utilisateurs est vide. Le mot de passe par défaut doit être changé à
// la première connexion.
func SeedAdmin(ctx context.Context, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) error {
	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := userRepo.CreateUser(ctx, dto.CreateUserDTO{
		Email:     defaultAdminEmail,
		FirstName: null.StringFrom("Admin"),
		LastName:  null.StringFrom("Parc"),
		Role:      "admin",
		IsActive:  true,
	}, string(hash))
	if err != nil {
		return err
	}

	logger.Info("compte administrateur initial créé", zap.String("email", admin.Email))
	return nil
}
