package models

import "time"

type Major struct {
	Id               int64     `json:"id" db:"id"`
	DepartmentId     int64     `json:"department_id" db:"department_id"`
	DepartmentName   *string   `json:"department_name" db:"department_name"`
	ProgramId        int64     `json:"program_id" db:"program_id"`
	Code             string    `json:"code" db:"code"`
	Name             string    `json:"name" db:"name"`
	ShortName        string    `json:"short_name" db:"short_name"`
	Description      *string   `json:"description" db:"description"`
	TotalCredits     int32     `json:"total_credits" db:"total_credits"`
	CoreCredits      int32     `json:"core_credits" db:"core_credits"`
	ElectiveCredits  int32     `json:"elective_credits" db:"elective_credits"`
	AccessLevel      string    `json:"access_level" db:"access_level"`
	IsFree           bool      `json:"is_free" db:"is_free"`
	Price            float64   `json:"price" db:"price"`
	CoverImage       *string   `json:"cover_image" db:"cover_image"`
	IntroVideo       *string   `json:"intro_video" db:"intro_video"`
	LearningOutcomes []string  `json:"learning_outcomes" db:"learning_outcomes"`
	CareerPaths      []string  `json:"career_paths" db:"career_paths"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CreateMajorRequest struct {
	DepartmentId     int64    `json:"departmentId" db:"department_id" binding:"required,min=1"`
	ProgramId        int64    `json:"programId" db:"program_id" binding:"required,min=1"`
	Code             string   `json:"code" db:"code" binding:"required,min=1,max=20"`
	Name             string   `json:"name" db:"name" binding:"required,min=1,max=255"`
	ShortName        string   `json:"shortName" db:"short_name" binding:"required,min=1,max=100"`
	Description      *string  `json:"description" db:"description"`
	TotalCredits     int32    `json:"totalCredits" db:"total_credits" binding:"required,min=1"`
	CoreCredits      int32    `json:"coreCredits" db:"core_credits" binding:"min=0"`
	ElectiveCredits  int32    `json:"electiveCredits" db:"elective_credits" binding:"min=0"`
	AccessLevel      *string  `json:"accessLevel" db:"access_level" binding:"omitempty,oneof=PUBLIC REGISTERED_ONLY RESTRICTED STUDENTS_ONLY STAFF_ONLY PREMIUM"`
	IsFree           *bool    `json:"isFree" db:"is_free"`
	Price            *float64 `json:"price" db:"price" binding:"omitempty,min=0"`
	CoverImage       *string  `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo       *string  `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	LearningOutcomes []string `json:"learningOutcomes" db:"learning_outcomes"`
	CareerPaths      []string `json:"careerPaths" db:"career_paths"`
	Status           *string  `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}

type UpdateMajorRequest struct {
	DepartmentId     *int64   `json:"departmentId" db:"department_id" binding:"omitempty,min=1"`
	ProgramId        *int64   `json:"programId" db:"program_id" binding:"omitempty,min=1"`
	Code             *string  `json:"code" db:"code" binding:"omitempty,min=1,max=20"`
	Name             *string  `json:"name" db:"name" binding:"omitempty,min=1,max=255"`
	ShortName        *string  `json:"shortName" db:"short_name" binding:"omitempty,min=1,max=100"`
	Description      *string  `json:"description" db:"description"`
	TotalCredits     *int32   `json:"totalCredits" db:"total_credits" binding:"omitempty,min=1"`
	CoreCredits      *int32   `json:"coreCredits" db:"core_credits" binding:"omitempty,min=0"`
	ElectiveCredits  *int32   `json:"electiveCredits" db:"elective_credits" binding:"omitempty,min=0"`
	AccessLevel      *string  `json:"accessLevel" db:"access_level" binding:"omitempty,oneof=PUBLIC REGISTERED_ONLY RESTRICTED STUDENTS_ONLY STAFF_ONLY PREMIUM"`
	IsFree           *bool    `json:"isFree" db:"is_free"`
	Price            *float64 `json:"price" db:"price" binding:"omitempty,min=0"`
	CoverImage       *string  `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo       *string  `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	LearningOutcomes []string `json:"learningOutcomes" db:"learning_outcomes"`
	CareerPaths      []string `json:"careerPaths" db:"career_paths"`
	Status           *string  `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}
