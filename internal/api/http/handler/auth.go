package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (int64, error)
	Login(ctx context.Context, code, credential string) (model.LoginResult, error)
	CurrentIdentity(ctx context.Context, owner int64) (model.User, error)
}

// Auth handles registration, login and identity endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Name       string `json:"nombre" form:"nombre"`
	Surname    string `json:"apellido" form:"apellido"`
	Address    string `json:"direccion" form:"direccion"`
	Email      string `json:"email" form:"email"`
	Credential string `json:"clave" form:"clave"`
	Code       string `json:"codigo" form:"codigo"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// Register creates a user account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	userID, err := h.authService.Register(c.Request.Context(), model.RegisterParams{
		Name:       req.Name,
		Surname:    req.Surname,
		Address:    req.Address,
		Email:      req.Email,
		Code:       req.Code,
		Credential: req.Credential,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Message: "Usuario registrado correctamente.",
		UserID:  userID,
	})
}

type loginRequest struct {
	Code       string `json:"codigo" form:"codigo"`
	Credential string `json:"clave" form:"clave"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	UserID    int64     `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies the code/credential pair and returns a session token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Code, req.Credential)
	if errors.Is(err, model.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Message: "Código o clave incorrectos."})
		return
	}
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Success:   true,
		UserID:    res.UserID,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

type currentUserResponse struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"nombre"`
	Surname string `json:"apellido"`
}

// CurrentUser returns the caller's identity, falling back to the most recent
// login when no session token was presented.
func (h *Auth) CurrentUser(c *gin.Context) {
	var owner int64
	if session, ok := h.contextManager.GetSessionFromContext(c.Request.Context()); ok {
		owner = session.UserID
	}

	user, err := h.authService.CurrentIdentity(c.Request.Context(), owner)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, currentUserResponse{
		UserID:  user.ID,
		Name:    user.Name,
		Surname: user.Surname,
	})
}
