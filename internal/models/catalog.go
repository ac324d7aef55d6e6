package models

import "time"

// Artist описывает профиль артиста в каталоге.
type Artist struct {
	ID          int64     `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	StageName   string    `db:"stage_name" json:"stage_name"`
	CategoryID  *int64    `db:"category_id" json:"category_id,omitempty"`
	City        *string   `db:"city" json:"city,omitempty"`
	PriceMin    *float64  `db:"price_min" json:"price_min,omitempty"`
	PriceMax    *float64  `db:"price_max" json:"price_max,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Venue описывает площадку для проведения событий.
type Venue struct {
	ID          int64     `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	Name        string    `db:"name" json:"name"`
	City        *string   `db:"city" json:"city,omitempty"`
	Address     *string   `db:"address" json:"address,omitempty"`
	Capacity    *int      `db:"capacity" json:"capacity,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Category — жанровая категория артистов (музыка, танец, цирк и т.д.).
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}
