package models

import "time"

type Certificate struct {
	Id                int64      `json:"id" db:"id"`
	CertificateNumber string     `json:"certificate_number" db:"certificate_number"`
	UserId            int64      `json:"user_id" db:"user_id"`
	SubjectId         *int64     `json:"subject_id" db:"subject_id"`
	ProgramId         *int64     `json:"program_id" db:"program_id"`
	MajorId           *int64     `json:"major_id" db:"major_id"`
	EnrollmentId      *int64     `json:"enrollment_id" db:"enrollment_id"`
	CertificateType   string     `json:"certificate_type" db:"certificate_type"`
	Title             string     `json:"title" db:"title"`
	Description       *string    `json:"description" db:"description"`
	IssuedBy          string     `json:"issued_by" db:"issued_by"`
	IssuerTitle       string     `json:"issuer_title" db:"issuer_title"`
	ValidFrom         time.Time  `json:"valid_from" db:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until" db:"valid_until"`
	Skills            []string   `json:"skills" db:"skills"`
	Grade             *string    `json:"grade" db:"grade"`
	Score             *float64   `json:"score" db:"score"`
	CreditHours       *int32     `json:"credit_hours" db:"credit_hours"`
	IsVerified        bool       `json:"is_verified" db:"is_verified"`
	Status            string     `json:"status" db:"status"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateCertificateRequest struct {
	CertificateNumber string   `json:"-" db:"certificate_number"`
	UserId            int64    `json:"userId" db:"user_id" binding:"required,min=1"`
	SubjectId         *int64   `json:"subjectId" db:"subject_id" binding:"omitempty,min=1"`
	ProgramId         *int64   `json:"programId" db:"program_id" binding:"omitempty,min=1"`
	MajorId           *int64   `json:"majorId" db:"major_id" binding:"omitempty,min=1"`
	EnrollmentId      *int64   `json:"enrollmentId" db:"enrollment_id" binding:"omitempty,min=1"`
	CertificateType   *string  `json:"certificateType" db:"certificate_type" binding:"omitempty,oneof=COMPLETION PARTICIPATION SKILL_BADGE PROFESSIONAL CONTINUING_ED"`
	Title             string   `json:"title" db:"title" binding:"required,min=1,max=255"`
	Description       *string  `json:"description" db:"description" binding:"omitempty,max=1000"`
	IssuedBy          string   `json:"issuedBy" db:"issued_by" binding:"required,min=1,max=255"`
	IssuerTitle       string   `json:"issuerTitle" db:"issuer_title" binding:"required,min=1,max=100"`
	ValidFrom         string   `json:"validFrom" db:"valid_from" binding:"required,datetime=2006-01-02"`
	ValidUntil        *string  `json:"validUntil" db:"valid_until" binding:"omitempty,datetime=2006-01-02"`
	Skills            []string `json:"skills" db:"skills" binding:"omitempty,dive,min=1,max=100"`
	Grade             *string  `json:"grade" db:"grade" binding:"omitempty,max=5"`
	Score             *float64 `json:"score" db:"score" binding:"omitempty,min=0,max=100"`
	CreditHours       *int32   `json:"creditHours" db:"credit_hours" binding:"omitempty,min=0,max=20"`
}
