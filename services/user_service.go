package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Register(input dto.RegisterDTO) (*models.User, error) {
	if _, err := s.repos.User.FindByUsername(input.Username); err == nil {
		return nil, models.NewError(models.KindValidation, "username %q is taken", input.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.RoleApplicant,
	}
	return user, s.repos.User.Create(user)
}

func (s *UserService) Authenticate(input dto.LoginDTO) (*models.User, error) {
	user, err := s.repos.User.FindByUsername(input.Username)
	if err != nil {
		return nil, models.NewError(models.KindValidation, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, models.NewError(models.KindValidation, "invalid credentials")
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return models.User{}, asNotFound(err, "user %d", id)
	}
	return user, nil
}
