package schema

// ContentBlogTable represents the 'content.blog' table
type ContentBlogTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	VideoURL    string
	Images      string
	AuthorID    string
	Status      string
	Views       string
	CreatedAt   string
	UpdatedAt   string
}

// ContentBlog is the schema definition for content.blog
var ContentBlog = ContentBlogTable{
	Table:       "content.blog",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	VideoURL:    "videourl",
	Images:      "images",
	AuthorID:    "authorid",
	Status:      "status",
	Views:       "views",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentBlogTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.VideoURL, t.Images,
		t.AuthorID, t.Status, t.Views, t.CreatedAt, t.UpdatedAt,
	}
}
