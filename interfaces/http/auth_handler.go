package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	"video-uploader/infrastructure/logger"
	"video-uploader/usecase"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

type IAuthHandler interface {
	Login(c *gin.Context)
	Signup(c *gin.Context)
	Logout(c *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase) IAuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	if err := h.authUsecase.Login(c.Request.Context(), req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Login failed")
		if errors.Is(err, model.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Check your credentials and try again"})
			return
		}
		c.JSON(http.StatusBadGateway, dto.Res{ResponseCode: "502", ResponseMessage: "Could not reach the login service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	if err := h.authUsecase.Signup(c.Request.Context(), req); err != nil {
		abortWithKind(c, err, "Could not create your account")
		return
	}
	// No token yet; the user logs in next.
	c.JSON(http.StatusOK, gin.H{"registered": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUsecase.Logout()
	c.JSON(http.StatusOK, gin.H{"loggedOut": true, "redirect": "/login"})
}
