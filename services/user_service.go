package services

import (
	"errors"
	"time"

	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/middleware"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.CreateUserDTO) (models.User, error) {
	var user models.User

	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return user, &apperrors.ConflictError{Resource: "user", Reason: "username already taken"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.WrapStorage("check username", err)
	}

	role := models.RoleSubmitter
	if input.Role != "" {
		role = models.UserRole(input.Role)
		if !role.IsValid() {
			return user, apperrors.NewValidationError("role", "unknown role "+input.Role)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user, apperrors.WrapStorage("hash password", err)
	}

	user = models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     role,
	}
	if err := s.Repos.User.Create(&user); err != nil {
		return user, apperrors.WrapStorage("create user", err)
	}
	return user, nil
}

func (s *UserService) Login(input dto.LoginDTO) (models.User, string, error) {
	user, err := s.Repos.User.GetByUsername(input.Username)
	if err != nil {
		return user, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return user, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return user, "", err
	}
	return user, token, nil
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.Repos.User.List()
	if err != nil {
		return nil, apperrors.WrapStorage("list users", err)
	}
	return users, nil
}
