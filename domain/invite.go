package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateInvite = "invite code created"
	MessageSuccessGetInvites   = "success getting invite codes"
	MessageSuccessUseInvite    = "invite code accepted"

	MessageFailedCreateInvite = "failed creating invite code"
	MessageFailedGetInvites   = "failed getting invite codes"
	MessageFailedUseInvite    = "failed using invite code"

	ErrInviteNotFound  = errors.New("invite code not found")
	ErrInviteExpired   = errors.New("invite code expired")
	ErrInviteExhausted = errors.New("invite code has no remaining uses")
	ErrInviteRevoked   = errors.New("invite code is no longer valid")
)

type (
	CreateInviteRequest struct {
		InvitedRole  string `json:"invited_role" validate:"omitempty,oneof=staff manager owner"`
		InvitedEmail string `json:"invited_email" validate:"omitempty,email"`
		MaxUses      int    `json:"max_uses" validate:"omitempty,min=1"`
		ExpiresInDay int    `json:"expires_in_days" validate:"omitempty,min=1"`
	}

	UseInviteRequest struct {
		InviteCode string `json:"invite_code" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required,min=8"`
		Phone      string `json:"phone"`
	}

	InviteResponse struct {
		ID           uuid.UUID  `json:"id"`
		InviteCode   string     `json:"invite_code"`
		InvitedRole  string     `json:"invited_role"`
		InvitedEmail string     `json:"invited_email,omitempty"`
		Status       string     `json:"status"`
		ExpiresAt    *time.Time `json:"expires_at,omitempty"`
		MaxUses      int        `json:"max_uses"`
		CurrentUses  int        `json:"current_uses"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
