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

const (
	enrollmentInProgress = "IN_PROGRESS"
	enrollmentCompleted  = "COMPLETED"
	enrollmentSuspended  = "SUSPENDED"
)

var enrollmentTable = lq.Table{
	Name: "public.enrollments e",
	Columns: []string{
		"e.id", "e.user_id", "u.name AS user_name", "e.subject_id", "sb.title AS subject_title",
		"e.enrollment_type", "e.status", "e.enrolled_at", "e.expiry_date", "e.completion_date",
		"e.progress_percentage", "e.payment_required", "e.payment_amount", "e.payment_status",
		"e.final_grade", "e.final_score", "e.credits", "e.certificate_issued",
		"e.created_at", "e.updated_at",
	},
	Joins: []string{
		"public.users u ON e.user_id = u.id",
		"public.subjects sb ON e.subject_id = sb.id",
	},
	DefaultSort:  "e.enrolled_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "e.id",
	Sortable: map[string]string{
		"enrolledAt": "e.enrolled_at",
		"progress":   "e.progress_percentage",
		"createdAt":  "e.created_at",
	},
}

var EnrollmentFilters = []lq.Filter{
	lq.Equal("userId", "e.user_id", lq.Integer),
	lq.Equal("subjectId", "e.subject_id", lq.Integer),
	lq.Equal("enrollmentType", "e.enrollment_type", lq.OneOf(config.ENROLLMENT_TYPES...)),
	lq.Equal("status", "e.status", lq.OneOf(config.ENROLLMENT_STATUSES...)),
	lq.Equal("paymentStatus", "e.payment_status", lq.OneOf(config.PAYMENT_STATUSES...)),
	lq.Equal("paymentRequired", "e.payment_required", lq.Boolean),
	lq.Equal("certificateIssued", "e.certificate_issued", lq.Boolean),
	lq.Between("startDate", "endDate", "e.enrolled_at", lq.Day),
	lq.Like("search", "sb.title", "u.name"),
}

type enrollmentRepo struct {
	crud[models.Enrollment]
}

func NewEnrollmentRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.EnrollmentRepoI {
	return &enrollmentRepo{crud[models.Enrollment]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "enrollment",
		table:    "public.enrollments",
		idColumn: "e.id",
		query:    newQuery(enrollmentTable, EnrollmentFilters...),
	}}
}

func (r *enrollmentRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Enrollment], error) {
	return r.list(ctx, params)
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return r.getByID(ctx, id)
}

func (r *enrollmentRepo) Create(ctx context.Context, req *models.CreateEnrollmentRequest) (*models.Enrollment, error) {
	values := helper.ColumnMap(req)
	values["status"] = enrollmentInProgress
	values["payment_status"] = "PENDING"
	if req.PaymentRequired == nil || !*req.PaymentRequired {
		values["payment_status"] = "PAID"
	}
	return r.create(ctx, values)
}

// UpdateProgress completes the enrollment once progress reaches 100.
func (r *enrollmentRepo) UpdateProgress(ctx context.Context, id int64, req *models.UpdateProgressRequest) (*models.Enrollment, error) {
	values := helper.ColumnMap(req)
	if req.ProgressPercentage != nil && *req.ProgressPercentage >= 100 {
		values["status"] = enrollmentCompleted
		values["completion_date"] = sq.Expr("NOW()")
	}
	return r.update(ctx, id, values)
}

func (r *enrollmentRepo) UpdateGrade(ctx context.Context, id int64, req *models.UpdateGradeRequest) (*models.Enrollment, error) {
	return r.update(ctx, id, helper.ColumnMap(req))
}

func (r *enrollmentRepo) SuspendExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Update(r.table).
		Set("status", enrollmentSuspended).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": enrollmentInProgress}).
		Where(sq.Lt{"expiry_date": now.Format(config.DateLayout)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, helper.HandleDatabaseError(err, r.log, "suspend expired enrollments")
	}

	return tag.RowsAffected(), nil
}
