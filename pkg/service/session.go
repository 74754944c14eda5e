package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"parc-info/pkg/apperrors"
)

// SessionClaims est le contenu signé du cookie de session.
type SessionClaims struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

type SessionTokenService interface {
	GenerateToken(userID, sessionID string) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	TTL() time.Duration
}

type sessionTokenService struct {
	secretKey string
	ttl       time.Duration
	logger    *zap.Logger
}

func NewSessionTokenService(secretKey string, ttl time.Duration, logger *zap.Logger) SessionTokenService {
	return &sessionTokenService{secretKey: secretKey, ttl: ttl, logger: logger}
}

func (s *sessionTokenService) GenerateToken(userID, sessionID string) (string, error) {
	claims := &SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *sessionTokenService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		s.logger.Debug("validation du jeton de session échouée", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}
	return claims, nil
}

func (s *sessionTokenService) TTL() time.Duration { return s.ttl }
