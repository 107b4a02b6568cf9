package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postboard-backend/internal/domains/feed/service"
	groupmodel "postboard-backend/internal/domains/group/model"
	usermodel "postboard-backend/internal/domains/user/model"
	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// pageParam reads the 1-based page query parameter; anything
// unparseable means page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// Home returns the cached home feed.
// GET /api/v1/feed
func (h *FeedHandler) Home(c *gin.Context) {
	feed, err := h.feedService.HomeFeed(c.Request.Context(), pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load feed")
		return
	}
	response.Success(c, http.StatusOK, feed)
}

// Group returns one group's feed.
// GET /api/v1/groups/:slug
func (h *FeedHandler) Group(c *gin.Context) {
	feed, err := h.feedService.GroupFeed(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, groupmodel.ErrGroupNotFound) {
			response.NotFound(c, "group not found")
			return
		}
		response.InternalServerError(c, "failed to load group feed")
		return
	}
	response.Success(c, http.StatusOK, feed)
}

// Profile returns an author's feed and profile metadata. Works for
// anonymous viewers; the following flag needs authentication.
// GET /api/v1/profiles/:username
func (h *FeedHandler) Profile(c *gin.Context) {
	viewerID, _ := middleware.UserID(c) // uuid.Nil when anonymous

	feed, err := h.feedService.ProfileFeed(c.Request.Context(), c.Param("username"), viewerID, pageParam(c))
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, feed)
}

// Followed returns posts by authors the viewer follows.
// GET /api/v1/follow
func (h *FeedHandler) Followed(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok || viewerID == uuid.Nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	feed, err := h.feedService.FollowedFeed(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load followed feed")
		return
	}
	response.Success(c, http.StatusOK, feed)
}

// ClearCache invalidates the cached home feed immediately.
// DELETE /api/v1/feed/cache
func (h *FeedHandler) ClearCache(c *gin.Context) {
	if err := h.feedService.ClearHomeCache(c.Request.Context()); err != nil {
		response.InternalServerError(c, "failed to clear cache")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "home feed cache cleared"})
}
