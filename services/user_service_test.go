package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/repositories/mock_repositories"
)

func setupUserMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	svc := NewUserService(&repositories.Repos{User: mockUser})
	return svc, mockUser
}

func TestRegister(t *testing.T) {
	input := dto.RegisterDTO{
		Username: "maria",
		Password: "s3cret-pass",
		Email:    "maria@example.com",
		FullName: "Maria Santos",
	}

	t.Run("new user defaults to the applicant role", func(t *testing.T) {
		svc, mockUser := setupUserMocks(t)

		mockUser.EXPECT().FindByUsername("maria").Return(models.User{}, gorm.ErrRecordNotFound)
		mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			u.ID = 1
			return nil
		})

		user, err := svc.Register(input)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Role != models.RoleApplicant {
			t.Fatalf("role = %s, want applicant", user.Role)
		}
		if user.Password == input.Password {
			t.Fatal("password stored in plaintext")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			t.Fatal("stored hash does not match the password")
		}
	})

	t.Run("taken username", func(t *testing.T) {
		svc, mockUser := setupUserMocks(t)

		mockUser.EXPECT().FindByUsername("maria").Return(models.User{Username: "maria"}, nil)

		_, err := svc.Register(input)
		if !models.IsKind(err, models.KindValidation) {
			t.Fatalf("got %v, want Validation", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	stored := models.User{
		Model:    gorm.Model{ID: 1},
		Username: "maria",
		Password: string(hash),
		Role:     models.RoleApplicant,
	}

	t.Run("good credentials", func(t *testing.T) {
		svc, mockUser := setupUserMocks(t)

		mockUser.EXPECT().FindByUsername("maria").Return(stored, nil)

		user, err := svc.Authenticate(dto.LoginDTO{Username: "maria", Password: "s3cret-pass"})
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.ID != 1 {
			t.Fatalf("got user %d, want 1", user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUser := setupUserMocks(t)

		mockUser.EXPECT().FindByUsername("maria").Return(stored, nil)

		if _, err := svc.Authenticate(dto.LoginDTO{Username: "maria", Password: "nope"}); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, mockUser := setupUserMocks(t)

		mockUser.EXPECT().FindByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

		if _, err := svc.Authenticate(dto.LoginDTO{Username: "ghost", Password: "x"}); err == nil {
			t.Fatal("expected an error")
		}
	})
}
