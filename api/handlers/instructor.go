package handlers

import (
	"net/http"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetInstructorList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetInstructorList--->>>", logger.Any("req", params))

	res, err := h.strg.Instructor().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetInstructorList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetInstructorByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Instructor().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}

func (h *Handler) CreateInstructor(c *gin.Context) {
	var req models.CreateInstructorRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateInstructor--->>>", logger.Any("req", req))

	item, err := h.strg.Instructor().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateInstructor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "instructor created", item)
}

func (h *Handler) UpdateInstructor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateInstructorRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateInstructor--->>>", logger.Any("id", id), logger.Any("req", req))

	item, err := h.strg.Instructor().Update(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateInstructor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "instructor updated", item)
}

func (h *Handler) DeleteInstructor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	h.log.Info("---DeleteInstructor--->>>", logger.Any("id", id))

	if err := h.strg.Instructor().Delete(c.Request.Context(), id); err != nil {
		h.log.Error("---DeleteInstructor--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "instructor deleted", nil)
}
