package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kbhatta/quotify-api/pkg/apperror"
	"github.com/kbhatta/quotify-api/pkg/utils"
)

// Role names carried in the session token
const (
	RoleOwner = "owner"
	RoleUser  = "user"
)

// AuthService gates the app behind two shared PINs, one per role.
// The configured PINs are hashed at startup so they never sit in
// memory or logs in the clear after boot.
type AuthService struct {
	ownerHash  []byte
	userHash   []byte
	jwtManager *utils.JWTManager
}

// NewAuthService hashes the configured PINs and returns the service
func NewAuthService(ownerPIN, userPIN string, jwtManager *utils.JWTManager) (*AuthService, error) {
	ownerHash, err := bcrypt.GenerateFromPassword([]byte(ownerPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte(userPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		ownerHash:  ownerHash,
		userHash:   userHash,
		jwtManager: jwtManager,
	}, nil
}

// LoginResult carries the issued token and the role it grants
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login checks the PIN against both roles, owner first, and issues a
// session token for the matching one.
func (s *AuthService) Login(ctx context.Context, pin string) (*LoginResult, error) {
	var role string
	switch {
	case bcrypt.CompareHashAndPassword(s.ownerHash, []byte(pin)) == nil:
		role = RoleOwner
	case bcrypt.CompareHashAndPassword(s.userHash, []byte(pin)) == nil:
		role = RoleUser
	default:
		return nil, apperror.ErrIncorrectPIN
	}

	token, err := s.jwtManager.GenerateToken(role)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to issue session token")
	}

	return &LoginResult{Token: token, Role: role}, nil
}
