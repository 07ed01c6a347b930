package models

import "time"

type Curriculum struct {
	Id              int64      `json:"id" db:"id"`
	ProgramId       int64      `json:"program_id" db:"program_id"`
	MajorId         int64      `json:"major_id" db:"major_id"`
	MajorName       *string    `json:"major_name" db:"major_name"`
	Name            string     `json:"name" db:"name"`
	ShortName       *string    `json:"short_name" db:"short_name"`
	Year            int32      `json:"year" db:"year"`
	AcademicYear    *int32     `json:"academic_year" db:"academic_year"`
	Version         string     `json:"version" db:"version"`
	TotalCredits    int32      `json:"total_credits" db:"total_credits"`
	CoreCredits     int32      `json:"core_credits" db:"core_credits"`
	ElectiveCredits int32      `json:"elective_credits" db:"elective_credits"`
	GeneralCredits  int32      `json:"general_credits" db:"general_credits"`
	Description     *string    `json:"description" db:"description"`
	CoverImage      *string    `json:"cover_image" db:"cover_image"`
	IntroVideo      *string    `json:"intro_video" db:"intro_video"`
	StartDate       *time.Time `json:"start_date" db:"start_date"`
	EndDate         *time.Time `json:"end_date" db:"end_date"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	Status          string     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateCurriculumRequest struct {
	ProgramId       int64   `json:"programId" db:"program_id" binding:"required,min=1"`
	MajorId         int64   `json:"majorId" db:"major_id" binding:"required,min=1"`
	Name            string  `json:"name" db:"name" binding:"required,min=1,max=255"`
	ShortName       *string `json:"shortName" db:"short_name" binding:"omitempty,max=100"`
	Year            int32   `json:"year" db:"year" binding:"required,min=1900,max=4000"`
	AcademicYear    *int32  `json:"academicYear" db:"academic_year" binding:"omitempty,min=1900,max=4000"`
	Version         string  `json:"version" db:"version" binding:"required,min=1,max=20"`
	TotalCredits    *int32  `json:"totalCredits" db:"total_credits" binding:"omitempty,min=0"`
	CoreCredits     *int32  `json:"coreCredits" db:"core_credits" binding:"omitempty,min=0"`
	ElectiveCredits *int32  `json:"electiveCredits" db:"elective_credits" binding:"omitempty,min=0"`
	GeneralCredits  *int32  `json:"generalCredits" db:"general_credits" binding:"omitempty,min=0"`
	Description     *string `json:"description" db:"description"`
	CoverImage      *string `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo      *string `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	StartDate       *string `json:"startDate" db:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"endDate" db:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool   `json:"isActive" db:"is_active"`
	Status          *string `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}

type UpdateCurriculumRequest struct {
	ProgramId       *int64  `json:"programId" db:"program_id" binding:"omitempty,min=1"`
	MajorId         *int64  `json:"majorId" db:"major_id" binding:"omitempty,min=1"`
	Name            *string `json:"name" db:"name" binding:"omitempty,min=1,max=255"`
	ShortName       *string `json:"shortName" db:"short_name" binding:"omitempty,max=100"`
	Year            *int32  `json:"year" db:"year" binding:"omitempty,min=1900,max=4000"`
	AcademicYear    *int32  `json:"academicYear" db:"academic_year" binding:"omitempty,min=1900,max=4000"`
	Version         *string `json:"version" db:"version" binding:"omitempty,min=1,max=20"`
	TotalCredits    *int32  `json:"totalCredits" db:"total_credits" binding:"omitempty,min=0"`
	CoreCredits     *int32  `json:"coreCredits" db:"core_credits" binding:"omitempty,min=0"`
	ElectiveCredits *int32  `json:"electiveCredits" db:"elective_credits" binding:"omitempty,min=0"`
	GeneralCredits  *int32  `json:"generalCredits" db:"general_credits" binding:"omitempty,min=0"`
	Description     *string `json:"description" db:"description"`
	CoverImage      *string `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo      *string `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	StartDate       *string `json:"startDate" db:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"endDate" db:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool   `json:"isActive" db:"is_active"`
	Status          *string `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}
