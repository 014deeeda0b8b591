package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/devfolio/internal/services"
	"github.com/mkravets/devfolio/internal/utils"
	"github.com/mkravets/devfolio/internal/validation"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	const op = "AuthHandler.Register"

	var in validation.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if res := validation.ValidateRegister(in); !res.IsValid {
		writeError(c, utils.EFields(utils.CodeInvalidArgument, op, res.Errors))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	const op = "AuthHandler.Login"

	var in validation.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if res := validation.ValidateLogin(in); !res.IsValid {
		writeError(c, utils.EFields(utils.CodeInvalidArgument, op, res.Errors))
		return
	}

	bearer, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: bearer})
}

func (h *AuthHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cu, err := h.svc.Current(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}
