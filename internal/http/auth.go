package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"game-catalog/internal/domain"
	"game-catalog/internal/service"
)

const accountContextKey = "auth.account"

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	_, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.FullName)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "User created. Please log in at /token."})
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password too short (min 6)"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"detail": "Username already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "registration failed"})
	}
}

// login exchanges form-encoded credentials for a bearer token.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// requireActiveUser guards protected routes. Invalid, expired and orphaned
// tokens all answer 401; a valid token for a disabled account answers 400.
func (h *Handler) requireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		account, err := h.users.ActiveUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUserDisabled) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Inactive user"})
				return
			}
			abortUnauthorized(c)
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

func (h *Handler) currentUser(c *gin.Context) {
	account, ok := c.MustGet(accountContextKey).(*domain.Account)
	if !ok {
		abortUnauthorized(c)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		Username: account.Username,
		Email:    account.Email,
		FullName: account.FullName,
		Disabled: account.Disabled,
	})
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials."})
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
