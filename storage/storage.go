package storage

import (
	"context"
	"io"
	"time"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/listquery"
	psqlpool "rmu/credit_bank_service/pkg/pool"
)

type StorageI interface {
	CloseDB()
	Ping(ctx context.Context) error
	Stats() psqlpool.Stats

	Subject() SubjectRepoI
	Major() MajorRepoI
	Curriculum() CurriculumRepoI
	Instructor() InstructorRepoI
	Department() DepartmentRepoI
	Enrollment() EnrollmentRepoI
	Certificate() CertificateRepoI
	Sale() SaleRepoI
	User() UserRepoI
}

type SubjectRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Subject], error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	Create(ctx context.Context, req *models.CreateSubjectRequest) (*models.Subject, error)
	Update(ctx context.Context, id int64, req *models.UpdateSubjectRequest) (*models.Subject, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.Subject, error)
	Delete(ctx context.Context, id int64) error
}

type MajorRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Major], error)
	GetByID(ctx context.Context, id int64) (*models.Major, error)
	Create(ctx context.Context, req *models.CreateMajorRequest) (*models.Major, error)
	Update(ctx context.Context, id int64, req *models.UpdateMajorRequest) (*models.Major, error)
	Delete(ctx context.Context, id int64) error
}

type CurriculumRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Curriculum], error)
	GetByID(ctx context.Context, id int64) (*models.Curriculum, error)
	Create(ctx context.Context, req *models.CreateCurriculumRequest) (*models.Curriculum, error)
	Update(ctx context.Context, id int64, req *models.UpdateCurriculumRequest) (*models.Curriculum, error)
	Delete(ctx context.Context, id int64) error
}

type InstructorRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Instructor], error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.Instructor, error)
	Update(ctx context.Context, id int64, req *models.UpdateInstructorRequest) (*models.Instructor, error)
	Delete(ctx context.Context, id int64) error
}

type DepartmentRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Department], error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

type EnrollmentRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Enrollment], error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Create(ctx context.Context, req *models.CreateEnrollmentRequest) (*models.Enrollment, error)
	UpdateProgress(ctx context.Context, id int64, req *models.UpdateProgressRequest) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, id int64, req *models.UpdateGradeRequest) (*models.Enrollment, error)
	// SuspendExpired suspends in-progress enrollments whose expiry date is
	// before now and returns how many changed.
	SuspendExpired(ctx context.Context, now time.Time) (int64, error)
}

type CertificateRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Certificate], error)
	GetByID(ctx context.Context, id int64) (*models.Certificate, error)
	GetByNumber(ctx context.Context, number string) (*models.Certificate, error)
	Create(ctx context.Context, req *models.CreateCertificateRequest) (*models.Certificate, error)
}

type SaleRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.Sale], error)
	// Export returns the filtered rows of GetList, unpaginated up to the
	// export cap.
	Export(ctx context.Context, params listquery.Params) ([]models.Sale, error)
}

type UserRepoI interface {
	GetList(ctx context.Context, params listquery.Params) (*listquery.PageResult[models.User], error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	CreateBatch(ctx context.Context, req []models.CreateUserRequest) ([]models.User, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// FileStorageI stores uploaded objects and returns their public URL.
type FileStorageI interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}
