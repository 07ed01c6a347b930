package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"
)

var instructorTable = lq.Table{
	Name: "public.instructors i",
	Columns: []string{
		"i.id", "i.user_id", "i.name", "i.position", "i.department_id",
		"d.name AS department_name", "i.ranking_id", "i.description", "i.avatar_path",
		"i.status", "i.created_at", "i.updated_at",
	},
	Joins:        []string{"public.departments d ON i.department_id = d.id"},
	DefaultSort:  "i.created_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "i.id",
	Sortable: map[string]string{
		"createdAt": "i.created_at",
		"name":      "i.name",
	},
}

var InstructorFilters = []lq.Filter{
	lq.Equal("departmentId", "i.department_id", lq.Integer),
	lq.Equal("rankingId", "i.ranking_id", lq.Integer),
	lq.Equal("status", "i.status", lq.OneOf(config.INSTRUCTOR_STATUSES...)),
	lq.Like("search", "i.name", "i.position"),
}

type instructorRepo struct {
	crud[models.Instructor]
}

func NewInstructorRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.InstructorRepoI {
	return &instructorRepo{crud[models.Instructor]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "instructor",
		table:    "public.instructors",
		idColumn: "i.id",
		query:    newQuery(instructorTable, InstructorFilters...),
	}}
}

func (r *instructorRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Instructor], error) {
	return r.list(ctx, params)
}

func (r *instructorRepo) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	return r.getByID(ctx, id)
}

func (r *instructorRepo) Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.Instructor, error) {
	return r.create(ctx, helper.ColumnMap(req))
}

func (r *instructorRepo) Update(ctx context.Context, id int64, req *models.UpdateInstructorRequest) (*models.Instructor, error) {
	return r.update(ctx, id, helper.ColumnMap(req))
}

func (r *instructorRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
