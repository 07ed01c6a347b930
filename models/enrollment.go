package models

import "time"

type Enrollment struct {
	Id                 int64      `json:"id" db:"id"`
	UserId             int64      `json:"user_id" db:"user_id"`
	UserName           *string    `json:"user_name" db:"user_name"`
	SubjectId          int64      `json:"subject_id" db:"subject_id"`
	SubjectTitle       *string    `json:"subject_title" db:"subject_title"`
	EnrollmentType     string     `json:"enrollment_type" db:"enrollment_type"`
	Status             string     `json:"status" db:"status"`
	EnrolledAt         time.Time  `json:"enrolled_at" db:"enrolled_at"`
	ExpiryDate         *time.Time `json:"expiry_date" db:"expiry_date"`
	CompletionDate     *time.Time `json:"completion_date" db:"completion_date"`
	ProgressPercentage float64    `json:"progress_percentage" db:"progress_percentage"`
	PaymentRequired    bool       `json:"payment_required" db:"payment_required"`
	PaymentAmount      float64    `json:"payment_amount" db:"payment_amount"`
	PaymentStatus      string     `json:"payment_status" db:"payment_status"`
	FinalGrade         *string    `json:"final_grade" db:"final_grade"`
	FinalScore         *float64   `json:"final_score" db:"final_score"`
	Credits            *int32     `json:"credits" db:"credits"`
	CertificateIssued  bool       `json:"certificate_issued" db:"certificate_issued"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateEnrollmentRequest struct {
	UserId          int64    `json:"userId" db:"user_id" binding:"required,min=1"`
	SubjectId       int64    `json:"subjectId" db:"subject_id" binding:"required,min=1"`
	EnrollmentType  *string  `json:"enrollmentType" db:"enrollment_type" binding:"omitempty,oneof=FORMAL AUDIT CONTINUING_ED SKILL_TRAINING FREE_ACCESS TRIAL"`
	ExpiryDate      *string  `json:"expiryDate" db:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentRequired *bool    `json:"paymentRequired" db:"payment_required"`
	PaymentAmount   *float64 `json:"paymentAmount" db:"payment_amount" binding:"omitempty,min=0"`
}

type UpdateProgressRequest struct {
	ProgressPercentage *float64 `json:"progressPercentage" db:"progress_percentage" binding:"required,min=0,max=100"`
}

type UpdateGradeRequest struct {
	FinalGrade string   `json:"finalGrade" db:"final_grade" binding:"required,min=1,max=5"`
	FinalScore *float64 `json:"finalScore" db:"final_score" binding:"required,min=0,max=100"`
	Credits    *int32   `json:"credits" db:"credits" binding:"omitempty,min=0,max=20"`
}
