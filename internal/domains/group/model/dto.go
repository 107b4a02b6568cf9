package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateGroupRequest creates a group. Slug is derived from the title
// when not given explicitly.
type CreateGroupRequest struct {
	Title       string `json:"title" form:"title"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.Length(0, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, 5000),
		),
	)
}
