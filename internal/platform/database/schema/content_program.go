package schema

// ContentProgramTable represents the 'content.program' table
type ContentProgramTable struct {
	Table             string
	ID                string
	Title             string
	Description       string
	Photo             string
	YouTubeLink       string
	Objectives        string
	Beneficiaries     string
	ExpenseCategories string
	Areas             string
	Duration          string
	Amount            string
	GalleryImages     string
	IsActive          string
	SortOrder         string
	CreatedAt         string
	UpdatedAt         string
}

// ContentProgram is the schema definition for content.program
var ContentProgram = ContentProgramTable{
	Table:             "content.program",
	ID:                "id",
	Title:             "title",
	Description:       "description",
	Photo:             "photo",
	YouTubeLink:       "youtubelink",
	Objectives:        "objectives",
	Beneficiaries:     "beneficiaries",
	ExpenseCategories: "expensecategories",
	Areas:             "areas",
	Duration:          "duration",
	Amount:            "amount",
	GalleryImages:     "galleryimages",
	IsActive:          "isactive",
	SortOrder:         "sortorder",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

// Columns returns all standard column names
func (t ContentProgramTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.Photo, t.YouTubeLink,
		t.Objectives, t.Beneficiaries, t.ExpenseCategories, t.Areas,
		t.Duration, t.Amount, t.GalleryImages, t.IsActive, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
	}
}
