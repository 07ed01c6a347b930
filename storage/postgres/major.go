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

var majorTable = lq.Table{
	Name: "public.majors mj",
	Columns: []string{
		"mj.id", "mj.department_id", "d.name AS department_name", "mj.program_id",
		"mj.code", "mj.name", "mj.short_name", "mj.description", "mj.total_credits",
		"mj.core_credits", "mj.elective_credits", "mj.access_level", "mj.is_free",
		"mj.price", "mj.cover_image", "mj.intro_video", "mj.learning_outcomes",
		"mj.career_paths", "mj.status", "mj.created_at", "mj.updated_at",
	},
	Joins:        []string{"public.departments d ON mj.department_id = d.id"},
	DefaultSort:  "mj.created_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "mj.id",
	Sortable: map[string]string{
		"createdAt": "mj.created_at",
		"name":      "mj.name",
		"code":      "mj.code",
	},
}

var MajorFilters = []lq.Filter{
	lq.Equal("departmentId", "mj.department_id", lq.Integer),
	lq.Equal("programId", "mj.program_id", lq.Integer),
	lq.Equal("accessLevel", "mj.access_level", lq.OneOf(config.ACCESS_LEVELS...)),
	lq.Equal("isFree", "mj.is_free", lq.Boolean),
	lq.Equal("status", "mj.status", lq.OneOf(config.STATUSES...)),
	lq.Like("search", "mj.name", "mj.code", "mj.short_name"),
}

type majorRepo struct {
	crud[models.Major]
}

func NewMajorRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.MajorRepoI {
	return &majorRepo{crud[models.Major]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "major",
		table:    "public.majors",
		idColumn: "mj.id",
		query:    newQuery(majorTable, MajorFilters...),
	}}
}

func (r *majorRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Major], error) {
	return r.list(ctx, params)
}

func (r *majorRepo) GetByID(ctx context.Context, id int64) (*models.Major, error) {
	return r.getByID(ctx, id)
}

func (r *majorRepo) Create(ctx context.Context, req *models.CreateMajorRequest) (*models.Major, error) {
	return r.create(ctx, helper.ColumnMap(req))
}

func (r *majorRepo) Update(ctx context.Context, id int64, req *models.UpdateMajorRequest) (*models.Major, error) {
	return r.update(ctx, id, helper.ColumnMap(req))
}

func (r *majorRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
