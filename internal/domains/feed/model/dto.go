package model

import (
	groupmodel "postboard-backend/internal/domains/group/model"
	postmodel "postboard-backend/internal/domains/post/model"
	usermodel "postboard-backend/internal/domains/user/model"
)

// FeedPage is one page of a post listing, newest first.
type FeedPage struct {
	Posts []*postmodel.Post `json:"posts"`
	Page  Page              `json:"page"`
}

// GroupFeed is the group page: the group plus its posts.
type GroupFeed struct {
	Group *groupmodel.Group `json:"group"`
	FeedPage
}

// ProfileFeed is the author page: posts plus profile metadata.
// Following is only meaningful when the viewer is authenticated and is
// not the author.
type ProfileFeed struct {
	Author     usermodel.UserDTO `json:"author"`
	PostsCount int               `json:"posts_count"`
	Following  bool              `json:"following"`
	FeedPage
}
