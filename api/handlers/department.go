package handlers

import (
	"net/http"

	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDepartmentList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetDepartmentList--->>>", logger.Any("req", params))

	res, err := h.strg.Department().GetList(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetDepartmentByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Department().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}
