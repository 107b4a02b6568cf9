package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"postboard-backend/internal/domains/group/model"
	"postboard-backend/internal/domains/group/service"
	"postboard-backend/internal/shared/response"
)

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create creates a group.
// POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req model.CreateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.groupService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrSlugTaken) {
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeSlugTaken, err.Error())
			return
		}
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid group data", verrs)
			return
		}
		response.InternalServerError(c, "failed to create group")
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// List returns all groups.
// GET /api/v1/groups
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list groups")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

// Delete removes a group. Posts tagged with it survive with their
// group cleared.
// DELETE /api/v1/groups/:slug
func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Request.Context(), c.Param("slug")); err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			response.NotFound(c, "group not found")
			return
		}
		response.InternalServerError(c, "failed to delete group")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "group deleted"})
}
