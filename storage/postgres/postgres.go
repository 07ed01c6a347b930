package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"
)

type Store struct {
	db       *psqlpool.Pool
	log      logger.LoggerI
	snapshot bool

	subject     storage.SubjectRepoI
	major       storage.MajorRepoI
	curriculum  storage.CurriculumRepoI
	instructor  storage.InstructorRepoI
	department  storage.DepartmentRepoI
	enrollment  storage.EnrollmentRepoI
	certificate storage.CertificateRepoI
	sale        storage.SaleRepoI
	user        storage.UserRepoI
}

func NewPostgres(ctx context.Context, cfg config.Config, log logger.LoggerI) (storage.StorageI, error) {
	pool, err := psqlpool.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewStore(pool, cfg, log), nil
}

// NewStore builds a Store on an existing pool.
func NewStore(pool *psqlpool.Pool, cfg config.Config, log logger.LoggerI) *Store {
	s := &Store{
		db:       pool,
		log:      log,
		snapshot: cfg.ListSnapshot,
	}

	s.subject = NewSubjectRepo(s.db, s.log, s.snapshot)
	s.major = NewMajorRepo(s.db, s.log, s.snapshot)
	s.curriculum = NewCurriculumRepo(s.db, s.log, s.snapshot)
	s.instructor = NewInstructorRepo(s.db, s.log, s.snapshot)
	s.department = NewDepartmentRepo(s.db, s.log, s.snapshot)
	s.enrollment = NewEnrollmentRepo(s.db, s.log, s.snapshot)
	s.certificate = NewCertificateRepo(s.db, s.log, s.snapshot)
	s.sale = NewSaleRepo(s.db, s.log, s.snapshot)
	s.user = NewUserRepo(s.db, s.log, s.snapshot)

	return s
}

func (s *Store) CloseDB() {
	s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Stats() psqlpool.Stats {
	return s.db.Stat()
}

func (s *Store) Subject() storage.SubjectRepoI {
	return s.subject
}

func (s *Store) Major() storage.MajorRepoI {
	return s.major
}

func (s *Store) Curriculum() storage.CurriculumRepoI {
	return s.curriculum
}

func (s *Store) Instructor() storage.InstructorRepoI {
	return s.instructor
}

func (s *Store) Department() storage.DepartmentRepoI {
	return s.department
}

func (s *Store) Enrollment() storage.EnrollmentRepoI {
	return s.enrollment
}

func (s *Store) Certificate() storage.CertificateRepoI {
	return s.certificate
}

func (s *Store) Sale() storage.SaleRepoI {
	return s.sale
}

func (s *Store) User() storage.UserRepoI {
	return s.user
}
