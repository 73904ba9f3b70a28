package model

import "time"

// Note belongs to exactly one user. FolderID is nil when the note is
// unfiled; Tags holds tag ids, not tag names.
type Note struct {
	NoteID    string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	FolderID  *string   `bson:"folder_id" json:"folderId"`
	Tags      []string  `bson:"tags" json:"tags"`
	UserID    string    `bson:"user_id" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
