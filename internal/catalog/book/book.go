// Copyright (c) 2026 BookLog. All rights reserved.

/*
Package book implements the shared book catalog.

The catalog is a global resource: books are created once (usually on first
import from a metadata source) and then referenced by any number of personal
library entries. Catalog rows carry bibliographic metadata only; everything
personal (status, progress, rating) lives on the library entry.
*/
package book

import "time"

// # Domain Entities

// Book represents a bibliographic record in the shared catalog.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Authors       []string   `json:"authors"`
	Publisher     string     `json:"publisher,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Description   string     `json:"description,omitempty"`
	PageCount     int        `json:"page_count,omitempty"`
	Categories    []string   `json:"categories"`
	ThumbnailURL  string     `json:"thumbnail_url,omitempty"`
	Language      string     `json:"language,omitempty"`

	// ISBNs are pointers so absent identifiers persist as NULL; the unique
	// constraints then ignore books without an assigned ISBN.
	ISBN10 *string `json:"isbn10,omitempty"`
	ISBN13 *string `json:"isbn13,omitempty"`

	AverageRating float64 `json:"average_rating"`
	RatingsCount  int     `json:"ratings_count"`
	PreviewLink   string  `json:"preview_link,omitempty"`
	InfoLink      string  `json:"info_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a catalog listing. All provided members are combined with
// AND; string members match as case-insensitive substrings except Language,
// which matches exactly after canonicalization.
type Filter struct {
	Title     string
	Author    string
	Publisher string
	Category  string
	Language  string
}

// IsZero reports whether no filter member is set.
func (f Filter) IsZero() bool {
	return f.Title == "" && f.Author == "" && f.Publisher == "" &&
		f.Category == "" && f.Language == ""
}

// # Field Identifiers

const (
	FieldTitle      = "title"
	FieldAuthors    = "authors"
	FieldISBN10     = "isbn10"
	FieldISBN13     = "isbn13"
	FieldLanguage   = "language"
	FieldQuery      = "q"
	FieldBookID     = "book_id"
	FieldPageCount  = "page_count"
	FieldCategories = "categories"

	// PopularBooksLimit caps the popularity leaderboard.
	PopularBooksLimit = 10
)
