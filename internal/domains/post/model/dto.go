package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest carries the post form fields. The image arrives as
// a separate multipart file.
type CreatePostRequest struct {
	Text    string     `json:"text" form:"text"`
	GroupID *uuid.UUID `json:"group_id" form:"group_id"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 20000),
		),
	)
}

// EditPostRequest mirrors the create form; pub_date is never part of it.
type EditPostRequest struct {
	Text    string     `json:"text" form:"text"`
	GroupID *uuid.UUID `json:"group_id" form:"group_id"`
}

func (r EditPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 20000),
		),
	)
}
