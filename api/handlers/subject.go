package handlers

import (
	"net/http"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSubjectList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetSubjectList--->>>", logger.Any("req", params))

	res, err := h.strg.Subject().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetSubjectList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetSubjectByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.strg.Subject().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", subject)
}

func (h *Handler) CreateSubject(c *gin.Context) {
	var req models.CreateSubjectRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateSubject--->>>", logger.Any("req", req))

	subject, err := h.strg.Subject().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateSubject--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "subject created", subject)
}

func (h *Handler) UpdateSubject(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateSubjectRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateSubject--->>>", logger.Any("id", id), logger.Any("req", req))

	subject, err := h.strg.Subject().Update(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateSubject--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "subject updated", subject)
}

func (h *Handler) ActivateSubject(c *gin.Context)   { h.setSubjectActive(c, true) }
func (h *Handler) DeactivateSubject(c *gin.Context) { h.setSubjectActive(c, false) }

func (h *Handler) setSubjectActive(c *gin.Context, active bool) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.strg.Subject().SetActive(c.Request.Context(), id, active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "subject deactivated"
	if active {
		message = "subject activated"
	}
	h.handleResponse(c, http.StatusOK, message, subject)
}

func (h *Handler) DeleteSubject(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	h.log.Info("---DeleteSubject--->>>", logger.Any("id", id))

	if err := h.strg.Subject().Delete(c.Request.Context(), id); err != nil {
		h.log.Error("---DeleteSubject--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "subject deleted", nil)
}
