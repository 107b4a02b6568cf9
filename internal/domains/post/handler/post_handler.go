package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	commentservice "postboard-backend/internal/domains/comment/service"
	"postboard-backend/internal/domains/post/model"
	"postboard-backend/internal/domains/post/service"
	"postboard-backend/internal/shared/middleware"
	"postboard-backend/internal/shared/response"
)

type PostHandler struct {
	postService    service.PostService
	commentService commentservice.CommentService
}

func NewPostHandler(postService service.PostService, commentService commentservice.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// imageFromForm reads the optional image part of the multipart form.
// JSON and urlencoded bodies cannot carry a file, so they simply mean
// no image.
func imageFromForm(c *gin.Context) ([]byte, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// Create publishes a new post and sends the author to their profile feed.
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	authorID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := imageFromForm(c)
	if err != nil {
		response.BadRequest(c, "could not read image upload")
		return
	}

	_, err = h.postService.CreatePost(c.Request.Context(), authorID, req, image)
	if err != nil {
		h.respondMutationError(c, err)
		return
	}

	username := c.GetString("username")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/profiles/%s", username))
}

// Edit updates a post in place. A non-author is redirected to the post
// detail view with no mutation and no error surfaced.
// PUT /api/v1/posts/:id
func (h *PostHandler) Edit(c *gin.Context) {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.EditPostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := imageFromForm(c)
	if err != nil {
		response.BadRequest(c, "could not read image upload")
		return
	}

	_, err = h.postService.EditPost(c.Request.Context(), requesterID, postID, req, image)
	if err != nil {
		if errors.Is(err, model.ErrNotAuthor) {
			// Silent refusal.
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/posts/%s", postID))
			return
		}
		h.respondMutationError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/posts/%s", postID))
}

// Detail returns the post together with its comments, newest first.
// GET /api/v1/posts/:id
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	p, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalServerError(c, "failed to load post")
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		response.InternalServerError(c, "failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"post":     p,
		"comments": comments,
	})
}

func (h *PostHandler) respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, model.ErrGroupRefInvalid):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeGroupRefInvalid, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid post data", verrs)
			return
		}
		response.InternalServerError(c, "failed to save post")
	}
}
