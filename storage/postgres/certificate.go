package postgres

import (
	"context"
	"time"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"

	sq "github.com/Masterminds/squirrel"
)

var certificateTable = lq.Table{
	Name: "public.certificates ct",
	Columns: []string{
		"ct.id", "ct.certificate_number", "ct.user_id", "ct.subject_id", "ct.program_id",
		"ct.major_id", "ct.enrollment_id", "ct.certificate_type", "ct.title", "ct.description",
		"ct.issued_by", "ct.issuer_title", "ct.valid_from", "ct.valid_until", "ct.skills",
		"ct.grade", "ct.score", "ct.credit_hours", "ct.is_verified", "ct.status",
		"ct.created_at", "ct.updated_at",
	},
	DefaultSort:  "ct.valid_from",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "ct.id",
	Sortable: map[string]string{
		"validFrom": "ct.valid_from",
		"title":     "ct.title",
		"createdAt": "ct.created_at",
	},
}

var CertificateFilters = []lq.Filter{
	lq.Equal("userId", "ct.user_id", lq.Integer),
	lq.Equal("subjectId", "ct.subject_id", lq.Integer),
	lq.Equal("programId", "ct.program_id", lq.Integer),
	lq.Equal("majorId", "ct.major_id", lq.Integer),
	lq.Equal("certificateType", "ct.certificate_type", lq.OneOf(config.CERTIFICATE_TYPES...)),
	lq.Equal("isVerified", "ct.is_verified", lq.Boolean),
	lq.Equal("status", "ct.status", lq.OneOf(config.STATUSES...)),
	lq.Between("startDate", "endDate", "ct.valid_from", lq.Date),
	lq.Like("search", "ct.title", "ct.certificate_number"),
}

type certificateRepo struct {
	crud[models.Certificate]
}

func NewCertificateRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.CertificateRepoI {
	return &certificateRepo{crud[models.Certificate]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "certificate",
		table:    "public.certificates",
		idColumn: "ct.id",
		query:    newQuery(certificateTable, CertificateFilters...),
	}}
}

func (r *certificateRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Certificate], error) {
	return r.list(ctx, params)
}

func (r *certificateRepo) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	return r.getByID(ctx, id)
}

func (r *certificateRepo) GetByNumber(ctx context.Context, number string) (*models.Certificate, error) {
	return r.getOne(ctx, r.db, sq.Eq{"ct.certificate_number": number})
}

// Create assigns a fresh certificate number. When the enrollment is given it
// is marked as having its certificate issued.
func (r *certificateRepo) Create(ctx context.Context, req *models.CreateCertificateRequest) (*models.Certificate, error) {
	req.CertificateNumber = helper.GenerateCertificateNumber(time.Now())

	values := helper.ColumnMap(req)
	if req.CertificateType == nil {
		values["certificate_type"] = "COMPLETION"
	}
	values["status"] = config.StatusActive

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "begin certificate create")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := r.insert(ctx, tx, values)
	if err != nil {
		return nil, err
	}

	if req.EnrollmentId != nil {
		query, args, err := psql.Update("public.enrollments").
			Set("certificate_issued", true).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": *req.EnrollmentId}).
			ToSql()
		if err != nil {
			return nil, err
		}
		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return nil, helper.HandleDatabaseError(err, r.log, "mark enrollment certificate")
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "commit certificate create")
	}

	return r.getByID(ctx, id)
}
