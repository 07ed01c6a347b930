package handlers

import (
	"net/http"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCertificateList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetCertificateList--->>>", logger.Any("req", params))

	res, err := h.strg.Certificate().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetCertificateList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetCertificateByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Certificate().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}

// VerifyCertificate looks a certificate up by its public number.
func (h *Handler) VerifyCertificate(c *gin.Context) {
	number := c.Param("number")
	h.log.Info("---VerifyCertificate--->>>", logger.String("number", number))

	item, err := h.strg.Certificate().GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "certificate is valid", item)
}

func (h *Handler) CreateCertificate(c *gin.Context) {
	var req models.CreateCertificateRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateCertificate--->>>", logger.Any("req", req))

	item, err := h.strg.Certificate().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateCertificate--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "certificate issued", item)
}
