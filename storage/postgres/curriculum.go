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

var curriculumTable = lq.Table{
	Name: "public.curriculums c",
	Columns: []string{
		"c.id", "c.program_id", "c.major_id", "m.name AS major_name", "c.name",
		"c.short_name", "c.year", "c.academic_year", "c.version", "c.total_credits",
		"c.core_credits", "c.elective_credits", "c.general_credits", "c.description",
		"c.cover_image", "c.intro_video", "c.start_date", "c.end_date", "c.is_active",
		"c.status", "c.created_at", "c.updated_at",
	},
	Joins:        []string{"public.majors m ON c.major_id = m.id"},
	DefaultSort:  "c.created_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "c.id",
	Sortable: map[string]string{
		"createdAt": "c.created_at",
		"name":      "c.name",
		"year":      "c.year",
	},
}

var CurriculumFilters = []lq.Filter{
	lq.Equal("programId", "c.program_id", lq.Integer),
	lq.Equal("majorId", "c.major_id", lq.Integer),
	lq.Equal("year", "c.year", lq.IntBetween(1900, 4000)),
	lq.Equal("academicYear", "c.academic_year", lq.IntBetween(1900, 4000)),
	lq.Equal("isActive", "c.is_active", lq.Boolean),
	lq.Equal("status", "c.status", lq.OneOf(config.STATUSES...)),
	lq.Like("search", "c.name", "c.short_name", "c.version"),
}

type curriculumRepo struct {
	crud[models.Curriculum]
}

func NewCurriculumRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.CurriculumRepoI {
	return &curriculumRepo{crud[models.Curriculum]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "curriculum",
		table:    "public.curriculums",
		idColumn: "c.id",
		query:    newQuery(curriculumTable, CurriculumFilters...),
	}}
}

func (r *curriculumRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Curriculum], error) {
	return r.list(ctx, params)
}

func (r *curriculumRepo) GetByID(ctx context.Context, id int64) (*models.Curriculum, error) {
	return r.getByID(ctx, id)
}

func (r *curriculumRepo) Create(ctx context.Context, req *models.CreateCurriculumRequest) (*models.Curriculum, error) {
	return r.create(ctx, helper.ColumnMap(req))
}

func (r *curriculumRepo) Update(ctx context.Context, id int64, req *models.UpdateCurriculumRequest) (*models.Curriculum, error) {
	return r.update(ctx, id, helper.ColumnMap(req))
}

func (r *curriculumRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
