package schema

// ReadingGoalTable represents the 'library.goal' table
type ReadingGoalTable struct {
	Table           string
	ID              string
	UserID          string
	Type            string
	Target          string
	Period          string
	StartDate       string
	EndDate         string
	Progress        string
	Completed       string
	Name            string
	Description     string
	ReminderEnabled string
	ReminderTime    string
	CreatedAt       string
	UpdatedAt       string
}

// ReadingGoal is the schema definition for library.goal
var ReadingGoal = ReadingGoalTable{
	Table:           "library.goal",
	ID:              "id",
	UserID:          "userid",
	Type:            "goaltype",
	Target:          "target",
	Period:          "period",
	StartDate:       "startdate",
	EndDate:         "enddate",
	Progress:        "progress",
	Completed:       "completed",
	Name:            "name",
	Description:     "description",
	ReminderEnabled: "reminderenabled",
	ReminderTime:    "remindertime",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t ReadingGoalTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Type, t.Target, t.Period, t.StartDate, t.EndDate,
		t.Progress, t.Completed, t.Name, t.Description, t.ReminderEnabled,
		t.ReminderTime, t.CreatedAt, t.UpdatedAt,
	}
}
