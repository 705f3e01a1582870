package schema

// ReadingSessionTable represents the 'library.session' table
type ReadingSessionTable struct {
	Table           string
	ID              string
	UserID          string
	BookID          string
	ReadAt          string
	StartPage       string
	EndPage         string
	DurationMinutes string
	Notes           string
	Emotion         string
	Rating          string
	Location        string
	CreatedAt       string
	UpdatedAt       string
}

// ReadingSession is the schema definition for library.session
var ReadingSession = ReadingSessionTable{
	Table:           "library.session",
	ID:              "id",
	UserID:          "userid",
	BookID:          "bookid",
	ReadAt:          "readat",
	StartPage:       "startpage",
	EndPage:         "endpage",
	DurationMinutes: "durationminutes",
	Notes:           "notes",
	Emotion:         "emotion",
	Rating:          "rating",
	Location:        "location",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t ReadingSessionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.BookID, t.ReadAt, t.StartPage, t.EndPage,
		t.DurationMinutes, t.Notes, t.Emotion, t.Rating, t.Location,
		t.CreatedAt, t.UpdatedAt,
	}
}
