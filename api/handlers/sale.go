package handlers

import (
	"bytes"
	"net/http"
	"time"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/pkg/util"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) GetSaleList(c *gin.Context) {
	h.saleList(c, listParams(c))
}

// PostSaleList accepts the same filters as GetSaleList in a JSON body.
func (h *Handler) PostSaleList(c *gin.Context) {
	var req models.SaleListRequest
	if !h.bind(c, &req) {
		return
	}

	params, err := helper.ToParams(req)
	if err != nil {
		h.handleError(c, helper.Invalid("body", err.Error()))
		return
	}

	h.saleList(c, params)
}

func (h *Handler) saleList(c *gin.Context, params listquery.Params) {
	h.log.Info("---GetSaleList--->>>", logger.Any("req", params))

	res, err := h.strg.Sale().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetSaleList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) ExportSales(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---ExportSales--->>>", logger.Any("req", params))

	if branch := params.Get("branch_code"); branch != "" && !util.ValidBranchCode(branch) {
		h.handleError(c, helper.Invalid("branch_code", "must be letters, digits, '-' or '_'"))
		return
	}

	sales, err := h.strg.Sale().Export(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---ExportSales--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	rows := make([][]any, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, s.ExportRow())
	}

	var buf bytes.Buffer
	if err = helper.WriteSheet(&buf, "Sales", models.SaleExportHeaders, rows); err != nil {
		h.handleError(c, err)
		return
	}

	filename := "sales-" + params.Get("branch_code") + "-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
