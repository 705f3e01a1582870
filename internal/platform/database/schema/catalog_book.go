package schema

// BookTable represents the 'catalog.book' table
type BookTable struct {
	Table         string
	ID            string
	Title         string
	Subtitle      string
	Authors       string
	Publisher     string
	PublishedDate string
	Description   string
	PageCount     string
	Categories    string
	ThumbnailURL  string
	Language      string
	ISBN10        string
	ISBN13        string
	AverageRating string
	RatingsCount  string
	PreviewLink   string
	InfoLink      string
	CreatedAt     string
	UpdatedAt     string
}

// Book is the schema definition for catalog.book
var Book = BookTable{
	Table:         "catalog.book",
	ID:            "id",
	Title:         "title",
	Subtitle:      "subtitle",
	Authors:       "authors",
	Publisher:     "publisher",
	PublishedDate: "publisheddate",
	Description:   "description",
	PageCount:     "pagecount",
	Categories:    "categories",
	ThumbnailURL:  "thumbnailurl",
	Language:      "language",
	ISBN10:        "isbn10",
	ISBN13:        "isbn13",
	AverageRating: "averagerating",
	RatingsCount:  "ratingscount",
	PreviewLink:   "previewlink",
	InfoLink:      "infolink",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t BookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Subtitle, t.Authors, t.Publisher, t.PublishedDate,
		t.Description, t.PageCount, t.Categories, t.ThumbnailURL, t.Language,
		t.ISBN10, t.ISBN13, t.AverageRating, t.RatingsCount, t.PreviewLink,
		t.InfoLink, t.CreatedAt, t.UpdatedAt,
	}
}
