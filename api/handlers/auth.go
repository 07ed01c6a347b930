package handlers

import (
	"net/http"
	"time"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/pkg/security"

	"github.com/gin-gonic/gin"
)

const invalidCredentials = "invalid email or password"

func (h *Handler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if !h.bind(c, &req) {
		return
	}
	h.log.Info("---SignIn--->>>", logger.String("email", req.Email))

	user, err := h.strg.User().GetByEmail(c.Request.Context(), req.Email)
	if helper.IsKind(err, helper.KindNotFound) {
		h.handleError(c, helper.Unauthorized(invalidCredentials))
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !helper.ComparePasswordBcrypt(user.Password, req.Password) {
		h.handleError(c, helper.Unauthorized(invalidCredentials))
		return
	}
	if user.Status != config.StatusActive {
		h.handleError(c, helper.Unauthorized("account is not active"))
		return
	}

	expiresAt := time.Now().Add(h.cfg.JWTExpiresIn)
	token, err := security.GenerateJWT(h.cfg.JWTSecret, user.Id, user.Email, user.Role, h.cfg.JWTExpiresIn)
	if err != nil {
		h.log.Error("---SignIn--->>>", logger.Error(err))
		h.handleError(c, err)
		return
	}

	h.handleResponse(c, http.StatusOK, "signed in", models.SignInResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}
