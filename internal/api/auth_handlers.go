package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/logging"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type RegisterRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Ping is a public liveness probe for the auth group.
func (h *AuthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Register creates a company with its owner user and returns a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	user, _, err := service.RegisterAccount(h.repo, req.CompanyName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEmailAlreadyRegistered})
		case errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrPasswordTooShort})
		case errors.Is(err, service.ErrPasswordTooLong):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrPasswordTooLong})
		case errors.Is(err, service.ErrCompanyNameTooShort):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCompanyNameShort})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrEmailRequired})
		default:
			logging.Error("account registration failed", err, logging.Fields{constants.LogFieldEmail: req.Email})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateAccount})
		}
		return
	}

	h.issueToken(c, user.ID, user.Email)
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	user, err := service.Authenticate(h.repo, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserDisabled) {
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrUserDisabled})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidCredentials})
		return
	}

	h.issueToken(c, user.ID, user.Email)
}

// Me returns the authenticated user's identity and company.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := userID(c)
	user, err := h.repo.GetUserByID(uid)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
		return
	}
	company, err := h.repo.GetCompanyForUser(uid)
	if err != nil || company == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNoCompanyMembership})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":      user.ID,
		"email":        user.Email,
		"company_id":   company.ID,
		"company_name": company.Name,
	})
}

type GoogleOAuthCallbackRequest struct {
	Code string `json:"code"`
}

// GoogleOAuthCallback exchanges an OAuth code for the user's email and
// signs them in, provisioning an account on first use.
func (h *AuthHandler) GoogleOAuthCallback(c *gin.Context) {
	var req GoogleOAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	googleClientID := os.Getenv(constants.EnvGoogleClientID)
	googleClientSecret := os.Getenv(constants.EnvGoogleClientSecret)
	if googleClientID == "" || googleClientSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingGoogleEnv})
		return
	}

	conf := &oauth2.Config{
		ClientID:     googleClientID,
		ClientSecret: googleClientSecret,
		RedirectURL:  constants.GoogleOAuthRedirect,
		Scopes:       constants.GoogleUserInfoScopes,
		Endpoint:     google.Endpoint,
	}

	token, err := conf.Exchange(context.Background(), req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrFailedExchangeToken, constants.JSONKeyDetails: err.Error()})
		return
	}

	client := conf.Client(context.Background(), token)
	resp, err := client.Get(constants.GoogleUserInfoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: err.Error()})
		return
	}
	defer resp.Body.Close()

	userData, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrFailedReadUserData, err.Error())})
		return
	}

	// Parse minimal fields from user info
	var payload map[string]any
	_ = json.Unmarshal(userData, &payload)
	email, _ := payload["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrNoEmailInGoogleProfile})
		return
	}

	user, err := service.ProvisionOAuthUser(h.repo, email)
	if err != nil {
		if errors.Is(err, service.ErrUserDisabled) {
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrUserDisabled})
			return
		}
		logging.Error("oauth sign-in failed", err, logging.Fields{constants.LogFieldEmail: email})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateAccount})
		return
	}

	h.issueToken(c, user.ID, user.Email)
}

// issueToken mints a session token, sets the session cookie and writes the
// bearer response body.
func (h *AuthHandler) issueToken(c *gin.Context, uid, email string) {
	sess, err := createSessionToken(uid, email, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}
	setSessionCookie(c, sess, h.tokenTTL)
	c.JSON(http.StatusOK, TokenResponse{AccessToken: sess, TokenType: "bearer"})
}
