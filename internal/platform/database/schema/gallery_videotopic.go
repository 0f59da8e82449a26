package schema

// GalleryVideoTopicTable represents the 'gallery.video_topic' table
type GalleryVideoTopicTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	CreatedAt   string
}

// GalleryVideoTopic is the schema definition for gallery.video_topic
var GalleryVideoTopic = GalleryVideoTopicTable{
	Table:       "gallery.video_topic",
	ID:          "id",
	Name:        "name",
	Description: "description",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t GalleryVideoTopicTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.CreatedAt}
}
