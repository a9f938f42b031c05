package model

import "time"

// Product is the item offered in a post.
type Product struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
}

// Post is a marketplace listing pairing a Product with its owning User.
type Post struct {
	ID        int64     `json:"id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Product   Product   `json:"product"`
	User      User      `json:"user"`

	// Pictures is filled by the client after a separate fetch.
	Pictures []Picture `json:"-"`
}

// NewPost is the payload accepted by POST /posts.
type NewPost struct {
	Product Product `json:"product"`
	UserID  int64   `json:"userId"`
}

// PostUpdate is the payload accepted by PUT /posts/:id.
type PostUpdate struct {
	Product Product `json:"product"`
}
