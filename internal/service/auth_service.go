package service

import (
	"errors"
	"strings"
	"time"

	"smarak/internal/db"
	"smarak/internal/entities"
	apperrors "smarak/internal/errors"
	"smarak/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

type AuthService interface {
	Signup(req entities.SignupRequest) (*entities.AuthResponse, error)
	Login(req entities.LoginRequest) (*entities.AuthResponse, error)
	EnsureAdmin(email, password string) error
}

type authService struct {
	repo   repository.UserRepository
	secret string
	log    *zerolog.Logger
}

func NewAuthService(repo repository.UserRepository, secret string, log *zerolog.Logger) AuthService {
	return &authService{repo: repo, secret: secret, log: log}
}

func (s *authService) Signup(req entities.SignupRequest) (*entities.AuthResponse, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		missing = append(missing, "email")
	}
	if len(req.Password) < 6 {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", user.Email).Msg("user registered")
	return s.respond(user)
}

func (s *authService) Login(req entities.LoginRequest) (*entities.AuthResponse, error) {
	user, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.respond(user)
}

// EnsureAdmin creates the seed admin account when it does not exist yet.
// Called once at startup; a blank password disables the seed.
func (s *authService) EnsureAdmin(email, password string) error {
	if password == "" {
		return nil
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &db.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := s.repo.Create(admin); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("seed admin account created")
	return nil
}

func (s *authService) respond(user *db.User) (*entities.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		Token: token,
		User: entities.UserResponse{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	}, nil
}
