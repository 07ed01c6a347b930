package postgres

import (
	"context"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/jaeger"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"

	"github.com/spf13/cast"
)

var saleTable = lq.Table{
	Name: "public.sales sa",
	Columns: []string{
		"sa.saleid", "sa.branch_code", "sa.customer_code", "sa.product_code", "sa.sale_date",
		"sa.quantity", "sa.unit_price", "sa.total_amount", "sa.created_at",
	},
	DefaultSort:  "sa.saleid",
	DefaultOrder: lq.OrderDesc,
	TieBreaker:   "sa.saleid",
	Sortable: map[string]string{
		"saleid":      "sa.saleid",
		"sale_date":   "sa.sale_date",
		"totalAmount": "sa.total_amount",
	},
}

// SaleFilters use the snake_case parameter names of the sales report.
var SaleFilters = []lq.Filter{
	lq.Equal("branch_code", "sa.branch_code", lq.Text).Require(),
	lq.Equal("customer_code", "sa.customer_code", lq.Text),
	lq.Equal("product_code", "sa.product_code", lq.Text),
	lq.Between("start_date", "end_date", "sa.sale_date", lq.Date),
	lq.Like("search", "sa.customer_code", "sa.product_code"),
}

type saleRepo struct {
	crud[models.Sale]
	export lq.Query
}

func NewSaleRepo(db *psqlpool.Pool, log logger.LoggerI, snapshot bool) storage.SaleRepoI {
	query := newQuery(saleTable, SaleFilters...)

	export := query
	export.DefaultLimit = config.ExportLimit
	export.MaxLimit = config.ExportLimit

	return &saleRepo{
		crud: crud[models.Sale]{
			db:       db,
			log:      log,
			snapshot: snapshot,
			entity:   "sale",
			table:    "public.sales",
			idColumn: "sa.saleid",
			query:    query,
		},
		export: export,
	}
}

func (r *saleRepo) GetList(ctx context.Context, params lq.Params) (*lq.PageResult[models.Sale], error) {
	return r.list(ctx, params)
}

// Export reads the first ExportLimit rows matching params. Pagination in
// params is ignored.
func (r *saleRepo) Export(ctx context.Context, params lq.Params) ([]models.Sale, error) {
	span, ctx := jaeger.StartSpanFromContext(ctx, "public.sales.Export", params)
	defer span.Finish()

	exportParams := make(lq.Params, len(params)+2)
	for k, v := range params {
		exportParams[k] = v
	}
	exportParams[lq.ParamPage] = "1"
	exportParams[lq.ParamLimit] = cast.ToString(config.ExportLimit)

	res, err := runList[models.Sale](ctx, r.db, r.log, r.snapshot, r.table, r.export, exportParams)
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}
