package usecase

import (
	"time"

	"authentix-backend/config"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo *repository.UserRepository
}

func NewUserUsecase(repo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

// Register creates a consumer account. Manager and admin accounts are seeded,
// never self-registered.
func (u *UserUsecase) Register(name, email, password string) error {
	if email == "" || password == "" {
		return ErrValidation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		PublicID: uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleConsumer,
	}
	return u.repo.Create(user)
}

func (u *UserUsecase) Login(email, password string) (string, model.User, error) {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", model.User{}, err
	}

	claims := jwt.MapClaims{
		"user_id":          user.PublicID,
		"role":             user.Role,
		"managed_brand_id": user.ManagedBrandID,
		"exp":              time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", model.User{}, err
	}

	return t, user, nil
}
