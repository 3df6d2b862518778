package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebook/api/v1/request"
	"recipebook/api/v1/response"
	"recipebook/config"
	"recipebook/dao"
	"recipebook/internal/metrics"
	"recipebook/internal/validator"
	"recipebook/service"
)

// UserAPI aggregates the HTTP handlers for signup, login, logout and
// session checking.
type UserAPI struct {
	service *service.UserService
	cookie  config.SessionConfig
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService, cookie config.SessionConfig) *UserAPI {
	return &UserAPI{service: s, cookie: cookie}
}

// Signup handles new account creation and opens a session on success.
func (u *UserAPI) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSignup("validation_failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := u.service.Signup(c.Request.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.IncSignup("validation_failed")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message})
		case errors.Is(err, service.ErrUserExists):
			metrics.IncSignup("conflict")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username already exists"})
		case errors.Is(err, dao.ErrConstraintViolated):
			metrics.IncSignup("conflict")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to create user due to database constraints"})
		default:
			metrics.IncSignup("internal_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	u.setSessionCookie(c, token)
	metrics.IncSignup("success")
	c.JSON(http.StatusCreated, response.NewUser(user))
}

// Login validates credentials and opens a session. Missing fields and bad
// credentials alike come back as 401.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := u.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.IncLogin("bad_request")
			c.JSON(http.StatusUnauthorized, gin.H{"error": verr.Message})
		case errors.Is(err, service.ErrInvalidCredentials):
			metrics.IncLogin("unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		default:
			metrics.IncLogin("internal_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	u.setSessionCookie(c, token)
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, response.NewUser(user))
}

// CheckSession returns the current user. Runs behind SessionAuth; 404
// covers a session whose user no longer exists.
func (u *UserAPI) CheckSession(c *gin.Context) {
	user, err := u.service.CurrentUser(c.GetUint64("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response.NewUser(user))
}

// Logout clears the session. It checks the cookie itself rather than going
// through SessionAuth so the missing-session case reports distinctly.
func (u *UserAPI) Logout(c *gin.Context) {
	tokenStr, err := c.Cookie(u.cookie.CookieName)
	if err != nil {
		metrics.IncLogout("no_session")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	sessionID, err := u.service.Tokens.Parse(tokenStr)
	if err != nil {
		metrics.IncLogout("no_session")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	if _, err := u.service.Session.Get(c.Request.Context(), sessionID); err != nil {
		metrics.IncLogout("no_session")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	if err := u.service.Logout(c.Request.Context(), sessionID); err != nil {
		metrics.IncLogout("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	u.clearSessionCookie(c)
	metrics.IncLogout("success")
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (u *UserAPI) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(u.cookie.CookieName, token, int(u.cookie.TTL), "/", "", false, true)
}

func (u *UserAPI) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(u.cookie.CookieName, "", -1, "/", "", false, true)
}
