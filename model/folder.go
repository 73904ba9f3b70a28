package model

import "time"

type Folder struct {
	FolderID  string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	UserID    string    `bson:"user_id" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
