package auth_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeVerifier struct{}

func (v *fakeVerifier) Verify(plain string, hashed string) bool {
	return hashed == "hashed:"+plain
}

type fakeIssuer struct{}

func (i *fakeIssuer) Issue(userID int64, now time.Time) (string, time.Time, error) {
	return "token-for-7", now.Add(15 * time.Minute), nil
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newLoginUsecase(userRepo *UserRepoMock) *auth.LoginUsecase {
	return auth.NewLoginUsecase(userRepo, &fakeVerifier{}, &fakeIssuer{}, &fixedClock{now: time.Unix(1700000000, 0)})
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return((*model.User)(nil), repository.ErrUserNotFound)

	uc := newLoginUsecase(userRepo)

	_, err := uc.Execute(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	//存在しないemailとパスワード間違いは同じエラーにする
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").
		Return(&model.User{ID: 7, Email: "ann@example.com", PasswordHash: "hashed:secret1"}, nil)

	uc := newLoginUsecase(userRepo)

	_, err := uc.Execute(context.Background(), auth.LoginInput{
		Email:    "ann@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").
		Return(&model.User{ID: 7, Email: "ann@example.com", PasswordHash: "hashed:secret1"}, nil)

	uc := newLoginUsecase(userRepo)

	out, err := uc.Execute(context.Background(), auth.LoginInput{
		Email:    "ann@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.UserID)
	assert.Equal(t, "token-for-7", out.Token)
}

// bcrypt実装同士の整合も一応見る
func TestLogin_BcryptRoundTrip(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	verifier := auth.NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.True(t, verifier.Verify("secret1", hashed))
	assert.False(t, verifier.Verify("wrong", hashed))
}
