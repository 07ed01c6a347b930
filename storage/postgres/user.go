package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/pkg/util"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var userTable = lq.Table{
	Name: "public.users u",
	Columns: []string{
		"u.id", "u.email", "u.username", "u.password", "u.first_name", "u.last_name",
		"u.name", "u.role", "u.phone_number", "u.status", "u.created_at", "u.updated_at",
	},
	DefaultSort:  "u.created_at",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "u.id",
	Sortable: map[string]string{
		"createdAt": "u.created_at",
		"name":      "u.name",
		"email":     "u.email",
	},
}

var UserFilters = []lq.Filter{
	lq.Equal("role", "u.role", lq.OneOf(config.USER_ROLES...)),
	lq.Equal("status", "u.status", lq.OneOf(config.StatusActive, config.StatusInactive, config.StatusSuspended)),
	lq.Like("search", "u.name", "u.email"),
}

type userRepo struct {
	crud[models.User]
}

func NewUserRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.UserRepoI {
	return &userRepo{crud[models.User]{
		db:       db,
		log:      log,
		snapshot: snapshot,
		entity:   "user",
		table:    "public.users",
		idColumn: "u.id",
		query:    newQuery(userTable, UserFilters...),
	}}
}

func (r *userRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.User], error) {
	return r.list(ctx, params)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getByID(ctx, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, r.db, sq.Eq{"u.email": email})
}

// prepareUser validates and hashes the password and fills the display name.
func prepareUser(req models.CreateUserRequest) (map[string]any, error) {
	if err := util.ValidStrongPassword(req.Password); err != nil {
		return nil, helper.Invalid("password", err.Error())
	}

	hashed, err := helper.HashPasswordBcrypt(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	req.Password = hashed
	req.Name = req.FirstName + " " + req.LastName

	values := helper.ColumnMap(&req)
	values["status"] = config.StatusActive
	return values, nil
}

func (r *userRepo) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	values, err := prepareUser(*req)
	if err != nil {
		return nil, err
	}
	return r.create(ctx, values)
}

// CreateBatch inserts every user in one transaction. Any failure rolls the
// whole batch back.
func (r *userRepo) CreateBatch(ctx context.Context, reqs []models.CreateUserRequest) ([]models.User, error) {
	rows := make([]map[string]any, 0, len(reqs))
	for i, req := range reqs {
		values, err := prepareUser(req)
		if err != nil {
			if e := helper.AsError(err); e.Kind == helper.KindInvalid {
				e.Field = "users[" + cast.ToString(i) + "]." + e.Field
				return nil, e
			}
			return nil, err
		}
		rows = append(rows, values)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "begin user batch")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]int64, 0, len(rows))
	for _, values := range rows {
		id, err := r.insert(ctx, tx, values)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "commit user batch")
	}

	query, args, err := r.selectBuilder().Where(sq.Eq{"u.id": ids}).OrderBy("u.id").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}

	result, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "select user batch")
	}

	users, err := pgx.CollectRows(result, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, helper.HandleDatabaseError(err, r.log, "select user batch")
	}

	return users, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	if req.FirstName != nil || req.LastName != nil {
		current, err := r.getByID(ctx, id)
		if err != nil {
			return nil, err
		}

		first, last := current.FirstName, current.LastName
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		name := first + " " + last
		req.Name = &name
	}

	return r.update(ctx, id, helper.ColumnMap(req))
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
