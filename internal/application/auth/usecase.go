package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
	"github.com/jhoicas/erp-pyme/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. El token
// lleva user_id y role_id; el guard de módulos re-lee los permisos del rol
// en cada petición, así que el token no fija permisos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	userUC   *usecase.UserUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, userUC *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, userUC: userUC, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario vía UserUseCase (hash bcrypt, rol existente).
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.userUC.Create(dto.CreateUserRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		RoleID:   in.RoleID,
	})
}

// Login verifica email/password, rechaza usuarios inactivos y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			RoleID:        user.RoleID,
			Status:        user.Status,
			CommissionPct: user.CommissionPct,
			CreatedAt:     user.CreatedAt,
			UpdatedAt:     user.UpdatedAt,
		},
	}, nil
}
