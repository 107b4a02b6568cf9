package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"postboard-backend/internal/domains/user/model"
	"postboard-backend/internal/domains/user/service"
	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// localNext reports whether a login next target stays on this site.
// Protocol-relative URLs ("//evil.example") must not pass.
func localNext(next string) bool {
	return strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//")
}

// Register creates a new account.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeUsernameTaken, err.Error())
		case errors.Is(err, model.ErrEmailTaken):
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeEmailTaken, err.Error())
		default:
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration data", verrs)
				return
			}
			response.InternalServerError(c, "failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login authenticates and issues tokens. The access token is also set
// as a session cookie so browser flows survive redirects.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidLogin) {
			response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeInvalidLogin, err.Error())
			return
		}
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid login data", verrs)
			return
		}
		response.InternalServerError(c, "failed to log in")
		return
	}

	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	c.SetCookie(middleware.SessionCookie, resp.AccessToken, maxAge, "/", "", false, true)

	// Honor the next parameter from a login redirect.
	if next := c.Query("next"); localNext(next) {
		c.Redirect(http.StatusSeeOther, next)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// LoginPrompt is the target of browser-flow login redirects. A JSON
// API has no form to render, so it says how to authenticate and echoes
// the next target back.
// GET /api/v1/auth/login
func (h *UserHandler) LoginPrompt(c *gin.Context) {
	data := gin.H{"message": "POST username and password to this endpoint to log in"}
	if next := c.Query("next"); localNext(next) {
		data["next"] = next
	}
	response.Success(c, http.StatusOK, data)
}

// Logout clears the session cookie.
// POST /api/v1/auth/logout
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated account.
// GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	dto, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, dto)
}
