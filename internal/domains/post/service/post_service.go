package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	groupmodel "postboard-backend/internal/domains/group/model"
	grouprepo "postboard-backend/internal/domains/group/repository"
	"postboard-backend/internal/domains/post/model"
	"postboard-backend/internal/domains/post/repository"
	"postboard-backend/internal/infrastructure/storage"
)

type postService struct {
	postRepo  repository.PostRepository
	groupRepo grouprepo.GroupRepository
	images    ImageStore
	processor *storage.ImageProcessor
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo grouprepo.GroupRepository,
	images ImageStore,
	processor *storage.ImageProcessor,
) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		images:    images,
		processor: processor,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest, image []byte) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGroupRef(ctx, req.GroupID); err != nil {
		return nil, err
	}

	p := &model.Post{
		ID:       uuid.New(),
		Text:     req.Text,
		PubDate:  time.Now(),
		AuthorID: authorID,
		GroupID:  req.GroupID,
	}

	if len(image) > 0 {
		url, err := s.attachImage(ctx, p.ID, image)
		if err != nil {
			return nil, err
		}
		p.ImageURL = &url
	}

	if err := s.postRepo.Create(ctx, p); err != nil {
		if errors.Is(err, model.ErrGroupRefInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return p, nil
}

func (s *postService) EditPost(ctx context.Context, requesterID, postID uuid.UUID, req model.EditPostRequest, image []byte) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	// Authorization short-circuit: not the author, nothing changes.
	if p.AuthorID != requesterID {
		return p, model.ErrNotAuthor
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGroupRef(ctx, req.GroupID); err != nil {
		return nil, err
	}

	p.Text = req.Text
	p.GroupID = req.GroupID

	if len(image) > 0 {
		url, err := s.attachImage(ctx, p.ID, image)
		if err != nil {
			return nil, err
		}
		p.ImageURL = &url
	}

	if err := s.postRepo.Update(ctx, p); err != nil {
		if errors.Is(err, model.ErrPostNotFound) || errors.Is(err, model.ErrGroupRefInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return p, nil
}

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

// checkGroupRef rejects dangling group references before the insert so
// the form sees a validation error, not a constraint violation.
func (s *postService) checkGroupRef(ctx context.Context, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if errors.Is(err, groupmodel.ErrGroupNotFound) {
			return model.ErrGroupRefInvalid
		}
		return fmt.Errorf("failed to check group: %w", err)
	}
	return nil
}

// attachImage validates, resizes and stores the attachment, returning
// the URL of the large variant.
func (s *postService) attachImage(ctx context.Context, postID uuid.UUID, image []byte) (string, error) {
	if err := s.processor.ValidateImage(image); err != nil {
		return "", err
	}

	variants, err := s.processor.ProcessImage(image)
	if err != nil {
		return "", err
	}

	var largeURL string
	for name, data := range variants {
		key := fmt.Sprintf("posts/%s/%s.jpg", postID, name)
		url, err := s.images.Upload(ctx, key, data, "image/jpeg")
		if err != nil {
			return "", fmt.Errorf("failed to upload image: %w", err)
		}
		if name == "large" {
			largeURL = url
		}
	}

	return largeURL, nil
}
