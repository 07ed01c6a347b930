package handlers

import (
	"net/http"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetEnrollmentList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetEnrollmentList--->>>", logger.Any("req", params))

	res, err := h.strg.Enrollment().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetEnrollmentList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetEnrollmentByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Enrollment().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}

func (h *Handler) CreateEnrollment(c *gin.Context) {
	var req models.CreateEnrollmentRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateEnrollment--->>>", logger.Any("req", req))

	item, err := h.strg.Enrollment().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateEnrollment--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "enrollment created", item)
}

func (h *Handler) UpdateEnrollmentProgress(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProgressRequest
	if !h.bind(c, &req) {
		return
	}

	item, err := h.strg.Enrollment().UpdateProgress(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "progress updated", item)
}

func (h *Handler) UpdateEnrollmentGrade(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateGradeRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateEnrollmentGrade--->>>", logger.Any("id", id), logger.Any("req", req))

	item, err := h.strg.Enrollment().UpdateGrade(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateEnrollmentGrade--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "grade updated", item)
}
