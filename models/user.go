package models

import "time"

type User struct {
	Id          int64     `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Username    *string   `json:"username" db:"username"`
	Password    string    `json:"-" db:"password"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateUserRequest struct {
	Email       string  `json:"email" db:"email" binding:"required,email"`
	Username    *string `json:"username" db:"username" binding:"omitempty,min=3,max=50"`
	Password    string  `json:"password" db:"password" binding:"required,min=6"`
	FirstName   string  `json:"firstName" db:"first_name" binding:"required,min=1,max=100"`
	LastName    string  `json:"lastName" db:"last_name" binding:"required,min=1,max=100"`
	Name        string  `json:"-" db:"name"`
	Role        string  `json:"role" db:"role" binding:"required,oneof=admin super_admin instructor student"`
	PhoneNumber *string `json:"phoneNumber" db:"phone_number"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"firstName" db:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string `json:"lastName" db:"last_name" binding:"omitempty,min=1,max=100"`
	Name        *string `json:"-" db:"name"`
	Email       *string `json:"email" db:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" db:"phone_number"`
	Role        *string `json:"role" db:"role" binding:"omitempty,oneof=admin super_admin instructor student"`
	Status      *string `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

type BatchCreateUsersRequest struct {
	Users []CreateUserRequest `json:"users" binding:"required,min=1,max=100,dive"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

type SignInResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
