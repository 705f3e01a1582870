package schema

// ReadingNoteTable represents the 'library.note' table
type ReadingNoteTable struct {
	Table     string
	ID        string
	UserID    string
	BookID    string
	Content   string
	Page      string
	Chapter   string
	NotedAt   string
	Tags      string
	Favorite  string
	CreatedAt string
	UpdatedAt string
}

// ReadingNote is the schema definition for library.note
var ReadingNote = ReadingNoteTable{
	Table:     "library.note",
	ID:        "id",
	UserID:    "userid",
	BookID:    "bookid",
	Content:   "content",
	Page:      "page",
	Chapter:   "chapter",
	NotedAt:   "notedat",
	Tags:      "tags",
	Favorite:  "favorite",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ReadingNoteTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.BookID, t.Content, t.Page, t.Chapter,
		t.NotedAt, t.Tags, t.Favorite, t.CreatedAt, t.UpdatedAt,
	}
}
