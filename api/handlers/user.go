package handlers

import (
	"net/http"
	"slices"

	"rmu/credit_bank_service/api/middleware"
	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetUserList(c *gin.Context) {
	params := listParams(c)
	h.log.Info("---GetUserList--->>>", logger.Any("req", params))

	res, err := h.strg.User().GetList(c.Request.Context(), params)
	if err != nil {
		h.log.Error("---GetUserList--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", res)
}

func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.strg.User().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "", user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateUser--->>>", logger.String("email", req.Email))

	user, err := h.strg.User().Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("---CreateUser--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "user created", user)
}

// CreateUsersBatch inserts all users or none.
func (h *Handler) CreateUsersBatch(c *gin.Context) {
	var req models.BatchCreateUsersRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---CreateUsersBatch--->>>", logger.Any("count", len(req.Users)))

	users, err := h.strg.User().CreateBatch(c.Request.Context(), req.Users)
	if err != nil {
		h.log.Error("---CreateUsersBatch--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusCreated, "users created", users)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---UpdateUser--->>>", logger.Any("id", id))

	if err := canUpdateUser(c, id, &req); err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.strg.User().Update(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("---UpdateUser--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "user updated", user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	h.log.Info("---DeleteUser--->>>", logger.Any("id", id))

	if err := h.strg.User().Delete(c.Request.Context(), id); err != nil {
		h.log.Error("---DeleteUser--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "user deleted", nil)
}

// canUpdateUser lets admins change any account. Everyone else may only edit
// their own profile fields, never role or status.
func canUpdateUser(c *gin.Context, id int64, req *models.UpdateUserRequest) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return helper.Unauthorized("missing bearer token")
	}

	if slices.Contains(config.ADMIN_ROLES, claims.Role) {
		return nil
	}
	if claims.UserID != id {
		return helper.Forbidden("cannot update another user")
	}
	if req.Role != nil || req.Status != nil {
		return helper.Forbidden("role and status can only be changed by an admin")
	}
	return nil
}
