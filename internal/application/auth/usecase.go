// Package auth autentica usuarios y emite tokens JWT.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret         string
	Issuer            string
	ExpirationMinutes int
}

// UseCase casos de uso de autenticación y usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica credenciales y devuelve el token firmado junto al usuario.
// Usuario inexistente, contraseña incorrecta o cuenta inactiva responden igual:
// domain.ErrUnauthorized, sin filtrar cuál fue.
func (uc *UseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register crea un usuario con la contraseña hasheada (bcrypt, costo por defecto).
func (uc *UseCase) Register(ctx context.Context, username, password, fullName, role string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Me devuelve el usuario autenticado a partir del ID del token.
func (uc *UseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
