package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard-backend/internal/domains/follow/model"
	"postboard-backend/internal/domains/follow/service"
	usermodel "postboard-backend/internal/domains/user/model"
	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow subscribes the viewer to an author and returns to the profile.
// Following yourself is refused with a visible message.
// POST /api/v1/profiles/:username/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	subscriberID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	username := c.Param("username")

	err := h.followService.Follow(c.Request.Context(), subscriberID, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		if errors.Is(err, model.ErrSelfFollow) {
			response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeSelfFollow, err.Error())
			return
		}
		response.InternalServerError(c, "failed to follow")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/profiles/%s", username))
}

// Unfollow removes the subscription; removing a non-existent one is
// fine and still redirects to the profile.
// POST /api/v1/profiles/:username/unfollow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	subscriberID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	username := c.Param("username")

	err := h.followService.Unfollow(c.Request.Context(), subscriberID, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to unfollow")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/profiles/%s", username))
}
