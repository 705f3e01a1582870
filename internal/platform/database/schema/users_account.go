package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	DisplayName  string
	Password     string
	PhotoURL     string
	AuthProvider string
	LastLoginAt  string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	DisplayName:  "displayname",
	Password:     "passwordhash",
	PhotoURL:     "photourl",
	AuthProvider: "authprovider",
	LastLoginAt:  "lastloginat",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.DisplayName, t.Password, t.PhotoURL,
		t.AuthProvider, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	}
}
