package auth

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

var ErrNothingToUpdate = errors.New("nothing to update")

// プロフィール表示用（ハッシュ類は出さない）
type ProfileOutput struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	MailingList       bool   `json:"mailing_list"`
	PreferredDelivery string `json:"preferred_delivery"`
	ProfileImage      string `json:"profile_image"`
}

// 部分更新。nilの項目は触らない。
type UpdateProfileInput struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Phone             *string
	MailingList       *bool
	PreferredDelivery *string
	ProfileImage      *string
}

func (in UpdateProfileInput) empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Email == nil &&
		in.Phone == nil && in.MailingList == nil &&
		in.PreferredDelivery == nil && in.ProfileImage == nil
}

type ProfileUsecase struct {
	userRepo repository.UserRepository
}

func NewProfileUsecase(userRepo repository.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

func (u *ProfileUsecase) Get(ctx context.Context, userID int64) (ProfileOutput, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, err
	}
	return toProfileOutput(user), nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, in UpdateProfileInput) (ProfileOutput, error) {
	if in.empty() {
		return ProfileOutput{}, ErrNothingToUpdate
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, err
	}

	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.MailingList != nil {
		user.MailingList = *in.MailingList
	}
	if in.PreferredDelivery != nil {
		user.PreferredDelivery = *in.PreferredDelivery
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return ProfileOutput{}, err
	}
	return toProfileOutput(user), nil
}

func toProfileOutput(u *model.User) ProfileOutput {
	return ProfileOutput{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		MailingList:       u.MailingList,
		PreferredDelivery: u.PreferredDelivery,
		ProfileImage:      u.ProfileImage,
	}
}
