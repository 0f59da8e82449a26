package schema

// ContentTeamMemberTable represents the 'content.team_member' table
type ContentTeamMemberTable struct {
	Table       string
	ID          string
	Name        string
	Designation string
	Photo       string
	Email       string
	Phone       string
	Bio         string
	SortOrder   string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
}

// ContentTeamMember is the schema definition for content.team_member
var ContentTeamMember = ContentTeamMemberTable{
	Table:       "content.team_member",
	ID:          "id",
	Name:        "name",
	Designation: "designation",
	Photo:       "photo",
	Email:       "email",
	Phone:       "phone",
	Bio:         "bio",
	SortOrder:   "sortorder",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentTeamMemberTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Designation, t.Photo, t.Email, t.Phone,
		t.Bio, t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
