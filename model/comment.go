package model

import "time"

// CommentEntity represents the comments table entity
type CommentEntity struct {
	ID        uint64    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Text      string    `db:"text"`
	AdID      uint64    `db:"ad_id"`
	UserID    uint64    `db:"user_id"`
}

// CommentDetail is a comment joined with its author.
type CommentDetail struct {
	CommentEntity
	AuthorEmail     string  `db:"author_email"`
	AuthorFirstName string  `db:"author_first_name"`
	AuthorImagePath *string `db:"author_image_path"`
}

func (c *CommentDetail) OwnerEmail() string {
	return c.AuthorEmail
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=256"`
}

type CommentResponse struct {
	Author          uint64  `json:"author"`
	AuthorImage     *string `json:"authorImage"`
	AuthorFirstName string  `json:"authorFirstName"`
	CreatedAt       int64   `json:"createdAt"`
	Pk              uint64  `json:"pk"`
	Text            string  `json:"text"`
}

type CommentsResponse struct {
	Count   int               `json:"count"`
	Results []CommentResponse `json:"results"`
}
