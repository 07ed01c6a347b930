package handlers

import (
	"context"
	"net/http"
	"time"

	"rmu/credit_bank_service/pkg/helper"
	psqlpool "rmu/credit_bank_service/pkg/pool"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Database psqlpool.Stats `json:"database"`
}

// Health pings the database and reports pool usage.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.strg.Ping(ctx); err != nil {
		h.handleError(c, &helper.Error{Kind: helper.KindUnavailable, Message: "database unavailable", Err: err})
		return
	}

	h.handleResponse(c, http.StatusOK, "", healthResponse{
		Status:   "ok",
		Version:  h.cfg.Version,
		Database: h.strg.Stats(),
	})
}
