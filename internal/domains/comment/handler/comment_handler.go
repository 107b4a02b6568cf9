package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postboard-backend/internal/domains/comment/model"
	"postboard-backend/internal/domains/comment/service"
	postmodel "postboard-backend/internal/domains/post/model"
	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type addCommentForm struct {
	Text string `json:"text" form:"text"`
}

// Add appends a comment to a post and returns to the post detail view.
// An empty text is dropped silently, mirroring the form behavior.
// POST /api/v1/posts/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	authorID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var form addCommentForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, err = h.commentService.AddComment(c.Request.Context(), authorID, postID, form.Text)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		if !errors.Is(err, model.ErrTextRequired) {
			response.InternalServerError(c, "failed to add comment")
			return
		}
		// empty comment: fall through to the redirect, nothing saved
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/posts/%s", postID))
}
