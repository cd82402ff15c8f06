package auth

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	MailingList    bool
	SecretQuestion string
	SecretAnswer   string
}

// 会員登録の出力
type RegisterUserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists = errors.New("user exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

func NewRegisterUserUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	email := strings.TrimSpace(in.Email)

	if !validator.IsEmail(email) {
		return RegisterUserOutput{}, ErrInvalidEmailFormat
	}
	if len(in.Password) < 6 {
		return RegisterUserOutput{}, ErrPasswordTooShort
	}

	//email重複チェック
	if existing, err := u.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return RegisterUserOutput{}, ErrEmailAlreadyExists
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return RegisterUserOutput{}, err
	}

	pwdHash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return RegisterUserOutput{}, err
	}

	//秘密の質問の答えも平文では保存しない
	secretHash := ""
	if in.SecretAnswer != "" {
		secretHash, err = u.hasher.Hash(in.SecretAnswer)
		if err != nil {
			return RegisterUserOutput{}, err
		}
	}

	user := model.User{
		Email:            email,
		PasswordHash:     pwdHash,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		MailingList:      in.MailingList,
		SecretQuestion:   in.SecretQuestion,
		SecretAnswerHash: secretHash,
	}
	if err := u.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return RegisterUserOutput{}, ErrEmailAlreadyExists
		}
		return RegisterUserOutput{}, err
	}

	return RegisterUserOutput{ID: user.ID, Email: user.Email}, nil
}
