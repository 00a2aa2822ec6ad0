package controllers

import (
	"errors"
	"net/http"
	"time"

	"localnews/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	tokens  *auth.TokenService
	limiter *auth.LoginLimiter
	log     *zap.Logger
}

func NewAuthController(tokens *auth.TokenService, limiter *auth.LoginLimiter, log *zap.Logger) *AuthController {
	return &AuthController{tokens: tokens, limiter: limiter, log: log}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type LoginResponse struct {
	Message   string    `json:"message" example:"Login successful"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type VerifyResponse struct {
	Valid bool         `json:"valid"`
	User  *auth.Claims `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin credentials for a bearer token. Repeated failures from one IP are throttled.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	ip := c.ClientIP()
	if !ac.limiter.Allowed(ip) {
		respondError(c, http.StatusTooManyRequests, "Too many login attempts, try again later", KindTooManyRequests)
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required", KindValidation)
		return
	}

	token, expiresAt, err := ac.tokens.Issue(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ac.limiter.Fail(ip)
			ac.log.Warn("failed login", zap.String("client_ip", ip))
			respondError(c, http.StatusUnauthorized, "Invalid credentials", KindInvalidCredentials)
			return
		}
		ac.log.Error("could not issue token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Login failed", KindStorage)
		return
	}

	ac.limiter.Reset(ip)
	c.JSON(http.StatusOK, LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Verify godoc
// @Summary Verify a token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body VerifyRequest true "Token to check"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} VerifyResponse
// @Router /auth/verify [post]
func (ac *AuthController) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Token is required", KindValidation)
		return
	}

	claims, err := ac.tokens.Verify(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, VerifyResponse{Valid: false, Error: "Invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, VerifyResponse{Valid: true, User: claims})
}
