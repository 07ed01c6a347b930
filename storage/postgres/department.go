package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"
)

var departmentTable = lq.Table{
	Name: "public.departments d",
	Columns: []string{
		"d.id", "d.institution_id", "d.name", "d.code", "d.faculty", "d.description",
		"d.status", "d.created_at", "d.updated_at",
	},
	DefaultSort:  "d.name",
	DefaultOrder: lq.OrderAsc,
	TieBreaker:   "d.id",
	Sortable: map[string]string{
		"name":      "d.name",
		"code":      "d.code",
		"createdAt": "d.created_at",
	},
}

var DepartmentFilters = []lq.Filter{
	lq.Equal("institutionId", "d.institution_id", lq.Integer),
	lq.Equal("status", "d.status", lq.OneOf(config.STATUSES...)),
	lq.Like("search", "d.name", "d.code"),
}

type departmentRepo struct {
	crud[models.Department]
}

func NewDepartmentRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.DepartmentRepoI {
	return &departmentRepo{crud[models.Department]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "department",
		table:    "public.departments",
		idColumn: "d.id",
		query:    newQuery(departmentTable, DepartmentFilters...),
	}}
}

func (r *departmentRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Department], error) {
	return r.list(ctx, params)
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.getByID(ctx, id)
}
