package model

// AdEntity represents the ads table entity
type AdEntity struct {
	ID          uint64 `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Price       int64  `db:"price"`
	ImagePath   string `db:"image_path"`
	UserID      uint64 `db:"user_id"`
}

// AdDetail is an ad joined with its author.
type AdDetail struct {
	AdEntity
	AuthorEmail     string `db:"author_email"`
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
	AuthorPhone     string `db:"author_phone"`
}

func (a *AdDetail) OwnerEmail() string {
	return a.AuthorEmail
}

type AdFilter struct {
	UserID uint64
}

// CreateAdRequest is the "properties" part of a new ad.
type CreateAdRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=64"`
	Description string `json:"description" validate:"max=256"`
	Price       *int64 `json:"price" validate:"required,gte=0"`
}

// UpdateAdRequest carries a partial ad update; nil fields are kept.
type UpdateAdRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=64"`
	Description *string `json:"description" validate:"omitempty,max=256"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
}

// ImageUpload is a file received from a client.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Empty reports a missing or zero-byte upload.
func (u *ImageUpload) Empty() bool {
	return u == nil || len(u.Data) == 0
}

type AdResponse struct {
	Author uint64 `json:"author"`
	Image  string `json:"image"`
	Pk     uint64 `json:"pk"`
	Price  int64  `json:"price"`
	Title  string `json:"title"`
}

type AdsResponse struct {
	Count   int          `json:"count"`
	Results []AdResponse `json:"results"`
}

type FullAdResponse struct {
	Pk              uint64 `json:"pk"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Description     string `json:"description"`
	Email           string `json:"email"`
	Image           string `json:"image"`
	Phone           string `json:"phone"`
	Price           int64  `json:"price"`
	Title           string `json:"title"`
}
