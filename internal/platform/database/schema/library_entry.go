package schema

// LibraryEntryTable represents the 'library.entry' table
type LibraryEntryTable struct {
	Table           string
	ID              string
	UserID          string
	BookID          string
	Status          string
	AddedDate       string
	StartDate       string
	FinishDate      string
	UserRating      string
	UserReview      string
	Progress        string
	LastReadDate    string
	Tags            string
	Favorite        string
	NotesCount      string
	HighlightsCount string
	SessionsCount   string
	CreatedAt       string
	UpdatedAt       string
}

// LibraryEntry is the schema definition for library.entry
var LibraryEntry = LibraryEntryTable{
	Table:           "library.entry",
	ID:              "id",
	UserID:          "userid",
	BookID:          "bookid",
	Status:          "status",
	AddedDate:       "addeddate",
	StartDate:       "startdate",
	FinishDate:      "finishdate",
	UserRating:      "userrating",
	UserReview:      "userreview",
	Progress:        "progress",
	LastReadDate:    "lastreaddate",
	Tags:            "tags",
	Favorite:        "favorite",
	NotesCount:      "notescount",
	HighlightsCount: "highlightscount",
	SessionsCount:   "sessionscount",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t LibraryEntryTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.BookID, t.Status, t.AddedDate, t.StartDate,
		t.FinishDate, t.UserRating, t.UserReview, t.Progress, t.LastReadDate,
		t.Tags, t.Favorite, t.NotesCount, t.HighlightsCount, t.SessionsCount,
		t.CreatedAt, t.UpdatedAt,
	}
}
