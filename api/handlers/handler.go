package handlers

import (
	"strings"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type Handler struct {
	cfg   config.Config
	log   logger.LoggerI
	strg  storage.StorageI
	files storage.FileStorageI
}

// NewHandler wires the HTTP layer. files may be nil when object storage is
// not configured; uploads then answer 503.
func NewHandler(cfg config.Config, log logger.LoggerI, strg storage.StorageI, files storage.FileStorageI) *Handler {
	return &Handler{
		cfg:   cfg,
		log:   log,
		strg:  strg,
		files: files,
	}
}

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) handleResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// handleError writes the failure envelope. Internal errors only carry the
// underlying cause outside release mode.
func (h *Handler) handleError(c *gin.Context, err error) {
	e := helper.AsError(err)

	message := e.Message
	if e.Kind == helper.KindInternal {
		h.log.Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Error(err),
		)
		if h.cfg.Environment != config.ReleaseMode {
			message = err.Error()
		}
	}

	c.AbortWithStatusJSON(e.Kind.HTTPStatus(), Response{
		Success: false,
		Message: message,
		Field:   e.Field,
	})
}

// bindingError turns gin binding failures into a 400 naming the first
// offending field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := lowerFirst(fe.Field())
		msg := field + " failed on " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return helper.Invalid(field, msg)
	}
	return helper.Invalid("body", "invalid request body: "+err.Error())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.handleError(c, bindingError(err))
		return false
	}
	return true
}

// idParam reads a positive integer path parameter.
func (h *Handler) idParam(c *gin.Context, name string) (int64, bool) {
	id, err := cast.ToInt64E(c.Param(name))
	if err != nil || id < 1 {
		h.handleError(c, helper.Invalid(name, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func listParams(c *gin.Context) listquery.Params {
	return listquery.ParamsFromValues(c.Request.URL.Query())
}
