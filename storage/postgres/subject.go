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

var subjectTable = lq.Table{
	Name: "public.subjects s",
	Columns: []string{
		"s.id", "s.major_id", "m.name AS major_name", "s.code", "s.title", "s.title_en",
		"s.description", "s.credits", "s.subject_type", "s.access_level", "s.is_free",
		"s.price", "s.theory_hours", "s.practice_hours", "s.self_study_hours", "s.level",
		"s.difficulty", "s.cover_image", "s.intro_video", "s.video_url",
		"s.learning_objectives", "s.skills_acquired", "s.prerequisites",
		"s.target_audience", "s.allow_all_lessons", "s.is_active", "s.status",
		"s.created_at", "s.updated_at",
	},
	Joins:        []string{"public.majors m ON s.major_id = m.id"},
	DefaultSort:  "s.created_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "s.id",
	Sortable: map[string]string{
		"createdAt": "s.created_at",
		"title":     "s.title",
		"code":      "s.code",
		"credits":   "s.credits",
		"level":     "s.level",
	},
}

// SubjectFilters lists the filters of GET /subjects in declaration order.
var SubjectFilters = []lq.Filter{
	lq.Equal("majorId", "s.major_id", lq.Integer),
	lq.Equal("subjectType", "s.subject_type", lq.OneOf(config.SUBJECT_TYPES...)),
	lq.Equal("accessLevel", "s.access_level", lq.OneOf(config.ACCESS_LEVELS...)),
	lq.Equal("isFree", "s.is_free", lq.Boolean),
	lq.Equal("difficulty", "s.difficulty", lq.OneOf(config.DIFFICULTIES...)),
	lq.Equal("level", "s.level", lq.IntBetween(1, 10)),
	lq.Equal("isActive", "s.is_active", lq.Boolean),
	lq.Equal("status", "s.status", lq.OneOf(config.STATUSES...)),
	lq.Like("search", "s.title", "s.code", "s.description"),
}

type subjectRepo struct {
	crud[models.Subject]
}

func NewSubjectRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.SubjectRepoI {
	return &subjectRepo{crud[models.Subject]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "subject",
		table:    "public.subjects",
		idColumn: "s.id",
		query:    newQuery(subjectTable, SubjectFilters...),
	}}
}

func (r *subjectRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Subject], error) {
	return r.list(ctx, params)
}

func (r *subjectRepo) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return r.getByID(ctx, id)
}

func (r *subjectRepo) Create(ctx context.Context, req *models.CreateSubjectRequest) (*models.Subject, error) {
	values := helper.ColumnMap(req)
	if _, ok := values["status"]; !ok {
		values["status"] = config.StatusActive
	}
	if _, ok := values["is_active"]; !ok {
		values["is_active"] = true
	}
	return r.create(ctx, values)
}

func (r *subjectRepo) Update(ctx context.Context, id int64, req *models.UpdateSubjectRequest) (*models.Subject, error) {
	return r.update(ctx, id, helper.ColumnMap(req))
}

// SetActive backs PATCH /subjects/:id/activate and /deactivate. Status
// follows the flag.
func (r *subjectRepo) SetActive(ctx context.Context, id int64, active bool) (*models.Subject, error) {
	status := config.StatusInactive
	if active {
		status = config.StatusActive
	}
	return r.update(ctx, id, map[string]any{"is_active": active, "status": status})
}

func (r *subjectRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
