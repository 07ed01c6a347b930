package handlers

import (
	"net/http"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMajorList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetMajorList--->>>", logger.Any("req", params))

	res, err := h.strg.Major().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetMajorList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetMajorByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Major().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}

func (h *Handler) CreateMajor(c *gin.Context) {
	var req models.CreateMajorRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateMajor--->>>", logger.Any("req", req))

	item, err := h.strg.Major().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateMajor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "major created", item)
}

func (h *Handler) UpdateMajor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMajorRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateMajor--->>>", logger.Any("id", id), logger.Any("req", req))

	item, err := h.strg.Major().Update(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateMajor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "major updated", item)
}

func (h *Handler) DeleteMajor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	h.log.Info("---DeleteMajor--->>>", logger.Any("id", id))

	if err := h.strg.Major().Delete(c.Request.Context(), id); err != nil {
		h.log.Error("---DeleteMajor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "major deleted", nil)
}
