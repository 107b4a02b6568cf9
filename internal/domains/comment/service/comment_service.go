package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"postboard-backend/internal/domains/comment/model"
	"postboard-backend/internal/domains/comment/repository"
	postmodel "postboard-backend/internal/domains/post/model"
	postrepo "postboard-backend/internal/domains/post/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    postrepo.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo postrepo.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, authorID, postID uuid.UUID, text string) (*model.Comment, error) {
	// The post must exist before anything else.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, model.ErrTextRequired
	}

	c := &model.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
		Created:  time.Now(),
	}

	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
