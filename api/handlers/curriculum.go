package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxCoverSize = 5 << 20

var coverTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func (h *Handler) GetCurriculumList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetCurriculumList--->>>", logger.Any("req", params))

	res, err := h.strg.Curriculum().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetCurriculumList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetCurriculumByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.strg.Curriculum().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", item)
}

func (h *Handler) CreateCurriculum(c *gin.Context) {
	var req models.CreateCurriculumRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateCurriculum--->>>", logger.Any("req", req))

	item, err := h.strg.Curriculum().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateCurriculum--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "curriculum created", item)
}

func (h *Handler) UpdateCurriculum(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCurriculumRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateCurriculum--->>>", logger.Any("id", id), logger.Any("req", req))

	item, err := h.strg.Curriculum().Update(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateCurriculum--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "curriculum updated", item)
}

func (h *Handler) DeleteCurriculum(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	h.log.Info("---DeleteCurriculum--->>>", logger.Any("id", id))

	if err := h.strg.Curriculum().Delete(c.Request.Context(), id); err != nil {
		h.log.Error("---DeleteCurriculum--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "curriculum deleted", nil)
}

// UploadCurriculumCover stores the multipart "file" field and points the
// curriculum's cover_image at it.
func (h *Handler) UploadCurriculumCover(c *gin.Context) {
	if h.files == nil {
		h.handleError(c, &helper.Error{Kind: helper.KindUnavailable, Message: "object storage is not configured"})
		return
	}

	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		h.handleError(c, helper.Invalid("file", "file is required"))
		return
	}
	if header.Size > maxCoverSize {
		h.handleError(c, helper.Invalid("file", "file must not exceed 5MB"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !coverTypes[contentType] {
		h.handleError(c, helper.Invalid("file", "file must be a jpeg, png or webp image"))
		return
	}

	ctx := c.Request.Context()
	if _, err = h.strg.Curriculum().GetByID(ctx, id); err != nil {
		h.handleError(c, err)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer file.Close()

	objectName := "curriculums/" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	h.log.Info("---UploadCurriculumCover--->>>", logger.Any("id", id), logger.String("object", objectName))

	url, err := h.files.Upload(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		h.log.Error("---UploadCurriculumCover--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	item, err := h.strg.Curriculum().Update(ctx, id, &models.UpdateCurriculumRequest{CoverImage: &url})
	if err != nil {
		if rmErr := h.files.Remove(ctx, objectName); rmErr != nil {
			h.log.Warn("remove orphaned cover", logger.String("object", objectName), logger.Error(rmErr))
		}
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "cover uploaded", item)
}
