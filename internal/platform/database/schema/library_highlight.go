package schema

// ReadingHighlightTable represents the 'library.highlight' table
type ReadingHighlightTable struct {
	Table         string
	ID            string
	UserID        string
	BookID        string
	Content       string
	Page          string
	Location      string
	HighlightedAt string
	Color         string
	Note          string
	Tags          string
	Favorite      string
	CreatedAt     string
	UpdatedAt     string
}

// ReadingHighlight is the schema definition for library.highlight
var ReadingHighlight = ReadingHighlightTable{
	Table:         "library.highlight",
	ID:            "id",
	UserID:        "userid",
	BookID:        "bookid",
	Content:       "content",
	Page:          "page",
	Location:      "location",
	HighlightedAt: "highlightedat",
	Color:         "color",
	Note:          "note",
	Tags:          "tags",
	Favorite:      "favorite",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t ReadingHighlightTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.BookID, t.Content, t.Page, t.Location,
		t.HighlightedAt, t.Color, t.Note, t.Tags, t.Favorite,
		t.CreatedAt, t.UpdatedAt,
	}
}
