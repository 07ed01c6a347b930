package models

import "time"

type Instructor struct {
	Id             int64     `json:"id" db:"id"`
	UserId         *int64    `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Position       *string   `json:"position" db:"position"`
	DepartmentId   *int64    `json:"department_id" db:"department_id"`
	DepartmentName *string   `json:"department_name" db:"department_name"`
	RankingId      *int64    `json:"ranking_id" db:"ranking_id"`
	Description    *string   `json:"description" db:"description"`
	AvatarPath     *string   `json:"avatar_path" db:"avatar_path"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CreateInstructorRequest struct {
	UserId       *int64  `json:"userId" db:"user_id" binding:"omitempty,min=1"`
	Name         string  `json:"name" db:"name" binding:"required,min=1,max=255"`
	Position     *string `json:"position" db:"position" binding:"omitempty,max=100"`
	DepartmentId *int64  `json:"departmentId" db:"department_id" binding:"omitempty,min=1"`
	RankingId    *int64  `json:"rankingId" db:"ranking_id" binding:"omitempty,min=1"`
	Description  *string `json:"description" db:"description"`
	AvatarPath   *string `json:"avatarPath" db:"avatar_path"`
	Status       *string `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PENDING SUSPENDED"`
}

type UpdateInstructorRequest struct {
	UserId       *int64  `json:"userId" db:"user_id" binding:"omitempty,min=1"`
	Name         *string `json:"name" db:"name" binding:"omitempty,min=1,max=255"`
	Position     *string `json:"position" db:"position" binding:"omitempty,max=100"`
	DepartmentId *int64  `json:"departmentId" db:"department_id" binding:"omitempty,min=1"`
	RankingId    *int64  `json:"rankingId" db:"ranking_id" binding:"omitempty,min=1"`
	Description  *string `json:"description" db:"description"`
	AvatarPath   *string `json:"avatarPath" db:"avatar_path"`
	Status       *string `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PENDING SUSPENDED"`
}
