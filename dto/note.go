package dto

// NoteRequest is the body for note create and update. Update applies
// full replacement, so absent content/folderId/tags clear those fields.
type NoteRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// NoteListQuery carries the supported list filters.
type NoteListQuery struct {
	SearchTerm string `form:"searchTerm"`
	FolderID   string `form:"folderId"`
	TagID      string `form:"tagId"`
}
