// Package models defines the rows held in the backing store. The application
// keeps only transient copies; the database is the source of truth.
package models

import "time"

// Identity is the singleton profile record. At most one row exists; ID is
// empty until the row has been persisted once.
type Identity struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	LogoURL     string `json:"logo_url"`
	Email       string `json:"email"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
}

// GalleryImage is one gallery item. Created by an upload-then-insert sequence,
// never updated afterward. StorageKey locates the object inside the gallery
// bucket so removal can clean it up.
type GalleryImage struct {
	ID         string    `json:"id"`
	Caption    string    `json:"caption"`
	ImageURL   string    `json:"image_url"`
	StorageKey string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notice is one published notice with an attached PDF document.
type Notice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PDFURL      string    `json:"pdf_url"`
	StorageKey  string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
