package models

import "time"

type Subject struct {
	Id                 int64     `json:"id" db:"id"`
	MajorId            *int64    `json:"major_id" db:"major_id"`
	MajorName          *string   `json:"major_name" db:"major_name"`
	Code               string    `json:"code" db:"code"`
	Title              string    `json:"title" db:"title"`
	TitleEn            *string   `json:"title_en" db:"title_en"`
	Description        *string   `json:"description" db:"description"`
	Credits            int32     `json:"credits" db:"credits"`
	SubjectType        string    `json:"subject_type" db:"subject_type"`
	AccessLevel        string    `json:"access_level" db:"access_level"`
	IsFree             bool      `json:"is_free" db:"is_free"`
	Price              float64   `json:"price" db:"price"`
	TheoryHours        int32     `json:"theory_hours" db:"theory_hours"`
	PracticeHours      int32     `json:"practice_hours" db:"practice_hours"`
	SelfStudyHours     int32     `json:"self_study_hours" db:"self_study_hours"`
	Level              int32     `json:"level" db:"level"`
	Difficulty         string    `json:"difficulty" db:"difficulty"`
	CoverImage         *string   `json:"cover_image" db:"cover_image"`
	IntroVideo         *string   `json:"intro_video" db:"intro_video"`
	VideoUrl           *string   `json:"video_url" db:"video_url"`
	LearningObjectives []string  `json:"learning_objectives" db:"learning_objectives"`
	SkillsAcquired     []string  `json:"skills_acquired" db:"skills_acquired"`
	Prerequisites      *string   `json:"prerequisites" db:"prerequisites"`
	TargetAudience     *string   `json:"target_audience" db:"target_audience"`
	AllowAllLessons    bool      `json:"allow_all_lessons" db:"allow_all_lessons"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	Status             string    `json:"status" db:"status"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type CreateSubjectRequest struct {
	MajorId            *int64   `json:"majorId" db:"major_id" binding:"omitempty,min=1"`
	Code               string   `json:"code" db:"code" binding:"required,min=1,max=20"`
	Title              string   `json:"title" db:"title" binding:"required,min=1,max=255"`
	TitleEn            *string  `json:"titleEn" db:"title_en" binding:"omitempty,max=255"`
	Description        *string  `json:"description" db:"description"`
	Credits            *int32   `json:"credits" db:"credits" binding:"omitempty,min=1,max=20"`
	SubjectType        *string  `json:"subjectType" db:"subject_type" binding:"omitempty,oneof=CORE MAJOR ELECTIVE GENERAL_EDUCATION FREE_ELECTIVE PREREQUISITE SEMINAR INTERNSHIP PROJECT THESIS"`
	AccessLevel        *string  `json:"accessLevel" db:"access_level" binding:"omitempty,oneof=PUBLIC REGISTERED_ONLY RESTRICTED STUDENTS_ONLY STAFF_ONLY PREMIUM"`
	IsFree             *bool    `json:"isFree" db:"is_free"`
	Price              *float64 `json:"price" db:"price" binding:"omitempty,min=0"`
	TheoryHours        *int32   `json:"theoryHours" db:"theory_hours" binding:"omitempty,min=0,max=24"`
	PracticeHours      *int32   `json:"practiceHours" db:"practice_hours" binding:"omitempty,min=0,max=24"`
	SelfStudyHours     *int32   `json:"selfStudyHours" db:"self_study_hours" binding:"omitempty,min=0,max=40"`
	Level              *int32   `json:"level" db:"level" binding:"omitempty,min=1,max=10"`
	Difficulty         *string  `json:"difficulty" db:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	CoverImage         *string  `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo         *string  `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	VideoUrl           *string  `json:"videoUrl" db:"video_url" binding:"omitempty,max=255"`
	LearningObjectives []string `json:"learningObjectives" db:"learning_objectives"`
	SkillsAcquired     []string `json:"skillsAcquired" db:"skills_acquired"`
	Prerequisites      *string  `json:"prerequisites" db:"prerequisites"`
	TargetAudience     *string  `json:"targetAudience" db:"target_audience"`
	AllowAllLessons    *bool    `json:"allowAllLessons" db:"allow_all_lessons"`
	IsActive           *bool    `json:"isActive" db:"is_active"`
	Status             *string  `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}

type UpdateSubjectRequest struct {
	MajorId            *int64   `json:"majorId" db:"major_id" binding:"omitempty,min=1"`
	Code               *string  `json:"code" db:"code" binding:"omitempty,min=1,max=20"`
	Title              *string  `json:"title" db:"title" binding:"omitempty,min=1,max=255"`
	TitleEn            *string  `json:"titleEn" db:"title_en" binding:"omitempty,max=255"`
	Description        *string  `json:"description" db:"description"`
	Credits            *int32   `json:"credits" db:"credits" binding:"omitempty,min=1,max=20"`
	SubjectType        *string  `json:"subjectType" db:"subject_type" binding:"omitempty,oneof=CORE MAJOR ELECTIVE GENERAL_EDUCATION FREE_ELECTIVE PREREQUISITE SEMINAR INTERNSHIP PROJECT THESIS"`
	AccessLevel        *string  `json:"accessLevel" db:"access_level" binding:"omitempty,oneof=PUBLIC REGISTERED_ONLY RESTRICTED STUDENTS_ONLY STAFF_ONLY PREMIUM"`
	IsFree             *bool    `json:"isFree" db:"is_free"`
	Price              *float64 `json:"price" db:"price" binding:"omitempty,min=0"`
	TheoryHours        *int32   `json:"theoryHours" db:"theory_hours" binding:"omitempty,min=0,max=24"`
	PracticeHours      *int32   `json:"practiceHours" db:"practice_hours" binding:"omitempty,min=0,max=24"`
	SelfStudyHours     *int32   `json:"selfStudyHours" db:"self_study_hours" binding:"omitempty,min=0,max=40"`
	Level              *int32   `json:"level" db:"level" binding:"omitempty,min=1,max=10"`
	Difficulty         *string  `json:"difficulty" db:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	CoverImage         *string  `json:"coverImage" db:"cover_image" binding:"omitempty,max=255"`
	IntroVideo         *string  `json:"introVideo" db:"intro_video" binding:"omitempty,max=255"`
	VideoUrl           *string  `json:"videoUrl" db:"video_url" binding:"omitempty,max=255"`
	LearningObjectives []string `json:"learningObjectives" db:"learning_objectives"`
	SkillsAcquired     []string `json:"skillsAcquired" db:"skills_acquired"`
	Prerequisites      *string  `json:"prerequisites" db:"prerequisites"`
	TargetAudience     *string  `json:"targetAudience" db:"target_audience"`
	AllowAllLessons    *bool    `json:"allowAllLessons" db:"allow_all_lessons"`
	IsActive           *bool    `json:"isActive" db:"is_active"`
	Status             *string  `json:"status" db:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT"`
}
