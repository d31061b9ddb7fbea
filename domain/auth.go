package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageSuccessLogin           = "login success"
	MessageSuccessRegister        = "registration success"
	MessageSuccessVerifyStoreCode = "store code verified"
	MessageSuccessGetProfile      = "success getting profile"

	MessageFailedLogin           = "login failed"
	MessageFailedRegister        = "registration failed"
	MessageFailedVerifyStoreCode = "store code verification failed"
	MessageFailedGetProfile      = "failed getting profile"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrAccountInactive      = errors.New("account is inactive")
	ErrPasswordTooWeak      = errors.New("password must be at least 8 characters with upper, lower and digit")
	ErrStoreCodeNotFound    = errors.New("store code not found")
	ErrStoreInactive        = errors.New("store is inactive")
	ErrEmployeeLimitReached = errors.New("employee limit for this store reached")
)

type (
	AdminLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	EmployeeLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	EmployeeRegisterRequest struct {
		StoreCode string `json:"store_code" validate:"required"`
		Name      string `json:"name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		Phone     string `json:"phone"`
	}

	VerifyStoreCodeRequest struct {
		StoreCode string `json:"store_code" validate:"required"`
	}

	LoginResponse struct {
		Token string      `json:"access_token"`
		User  UserProfile `json:"user"`
	}

	UserProfile struct {
		ID        uuid.UUID  `json:"id"`
		UserType  string     `json:"user_type"`
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Role      string     `json:"role"`
		StoreID   *uuid.UUID `json:"store_id,omitempty"`
		StoreName string     `json:"store_name,omitempty"`
	}

	VerifyStoreCodeResponse struct {
		Valid     bool   `json:"valid"`
		StoreName string `json:"store_name,omitempty"`
		StoreType string `json:"store_type,omitempty"`
	}
)
