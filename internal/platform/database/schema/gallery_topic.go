package schema

// GalleryTopicTable represents the 'gallery.topic' table
type GalleryTopicTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	CreatedAt   string
}

// GalleryTopic is the schema definition for gallery.topic
var GalleryTopic = GalleryTopicTable{
	Table:       "gallery.topic",
	ID:          "id",
	Name:        "name",
	Description: "description",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t GalleryTopicTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.CreatedAt}
}
