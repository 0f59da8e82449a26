package schema

// GalleryImageTable represents the 'gallery.image' table
type GalleryImageTable struct {
	Table        string
	ID           string
	TopicID      string
	Title        string
	ImageURL     string
	ThumbnailURL string
	DeleteURL    string
	UploadedBy   string
	CreatedAt    string
}

// GalleryImage is the schema definition for gallery.image
var GalleryImage = GalleryImageTable{
	Table:        "gallery.image",
	ID:           "id",
	TopicID:      "topicid",
	Title:        "title",
	ImageURL:     "imageurl",
	ThumbnailURL: "thumbnailurl",
	DeleteURL:    "deleteurl",
	UploadedBy:   "uploadedby",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t GalleryImageTable) Columns() []string {
	return []string{
		t.ID, t.TopicID, t.Title, t.ImageURL, t.ThumbnailURL,
		t.DeleteURL, t.UploadedBy, t.CreatedAt,
	}
}
