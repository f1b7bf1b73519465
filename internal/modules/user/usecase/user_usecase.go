package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/user/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/user/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserUsecase struct {
	repo *repository.UserRepository
	auth *config.AuthConfig
}

func NewUserUsecase(repo *repository.UserRepository, auth *config.AuthConfig) *UserUsecase {
	return &UserUsecase{repo: repo, auth: auth}
}

func (u *UserUsecase) Register(ctx context.Context, in dto.RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Email:    strings.ToLower(in.Email),
		Password: string(hash),
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and mints a signed bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *UserUsecase) Login(ctx context.Context, in dto.LoginInput) (dto.LoginOutput, error) {
	user, err := u.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return dto.LoginOutput{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return dto.LoginOutput{}, ErrInvalidCredentials
	}

	token, err := u.signToken(user)
	if err != nil {
		return dto.LoginOutput{}, err
	}
	return dto.LoginOutput{Token: token}, nil
}

func (u *UserUsecase) signToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.auth.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.auth.JWTSecret))
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUsecase) Update(ctx context.Context, id string, in dto.UpdateUserInput) (*model.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.ImageURL != nil {
		user.ImageURL = *in.ImageURL
	}
	if in.WalletAddress != nil {
		user.WalletAddress = *in.WalletAddress
	}
	if err := u.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
