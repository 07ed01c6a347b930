package models

import "time"

type Sale struct {
	SaleId       int64     `json:"saleid" db:"saleid"`
	BranchCode   string    `json:"branch_code" db:"branch_code"`
	CustomerCode string    `json:"customer_code" db:"customer_code"`
	ProductCode  string    `json:"product_code" db:"product_code"`
	SaleDate     time.Time `json:"sale_date" db:"sale_date"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	UnitPrice    float64   `json:"unit_price" db:"unit_price"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SaleListRequest is the body of POST /sale/list. It carries the same
// parameters as the query string form.
type SaleListRequest struct {
	BranchCode   string  `json:"branch_code" binding:"required"`
	CustomerCode *string `json:"customer_code,omitempty"`
	ProductCode  *string `json:"product_code,omitempty"`
	StartDate    *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Search       *string `json:"search,omitempty"`
	Page         *int    `json:"page,omitempty"`
	Limit        *int    `json:"limit,omitempty"`
}

var SaleExportHeaders = []string{
	"saleid", "branch_code", "customer_code", "product_code",
	"sale_date", "quantity", "unit_price", "total_amount",
}

func (s Sale) ExportRow() []any {
	return []any{
		s.SaleId, s.BranchCode, s.CustomerCode, s.ProductCode,
		s.SaleDate.Format("2006-01-02"), s.Quantity, s.UnitPrice, s.TotalAmount,
	}
}
