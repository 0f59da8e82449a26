package schema

// GalleryVideoTable represents the 'gallery.video' table
type GalleryVideoTable struct {
	Table      string
	ID         string
	TopicID    string
	Title      string
	VideoURL   string
	UploadedBy string
	CreatedAt  string
}

// GalleryVideo is the schema definition for gallery.video
var GalleryVideo = GalleryVideoTable{
	Table:      "gallery.video",
	ID:         "id",
	TopicID:    "topicid",
	Title:      "title",
	VideoURL:   "videourl",
	UploadedBy: "uploadedby",
	CreatedAt:  "createdat",
}

// Columns returns all standard column names
func (t GalleryVideoTable) Columns() []string {
	return []string{
		t.ID, t.TopicID, t.Title, t.VideoURL, t.UploadedBy, t.CreatedAt,
	}
}
