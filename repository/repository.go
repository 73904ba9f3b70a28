package repository

import (
	"context"
	"errors"

	"noteful/model"
)

// ErrDuplicateUsername surfaces the users collection's unique index.
var ErrDuplicateUsername = errors.New("username already exists")

// NoteFilter carries the optional list filters. The owner filter is
// always applied on top and is not part of this struct.
type NoteFilter struct {
	SearchTerm string
	FolderID   string
	TagID      string
}

// Users is the storage surface the signup and login flows need.
type Users interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// Notes is the note storage surface. Every method that touches an
// existing note filters by owner; a foreign note behaves like a
// missing one.
type Notes interface {
	InsertNote(ctx context.Context, note *model.Note) error
	FindNotes(ctx context.Context, userID string, filter NoteFilter) ([]*model.Note, error)
	FindNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	ReplaceNote(ctx context.Context, note *model.Note) (bool, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

// Folders is the folder storage surface. FolderExists backs reference
// validation on note create/update.
type Folders interface {
	InsertFolder(ctx context.Context, folder *model.Folder) error
	FindFolders(ctx context.Context, userID, searchTerm string) ([]*model.Folder, error)
	FindFolder(ctx context.Context, folderID, userID string) (*model.Folder, error)
	ReplaceFolder(ctx context.Context, folder *model.Folder) (bool, error)
	DeleteFolder(ctx context.Context, folderID, userID string) error
	FolderExists(ctx context.Context, folderID, userID string) (bool, error)
}

// Tags is the tag storage surface. TagExists backs reference
// validation on note create/update.
type Tags interface {
	InsertTag(ctx context.Context, tag *model.Tag) error
	FindTags(ctx context.Context, userID, searchTerm string) ([]*model.Tag, error)
	FindTag(ctx context.Context, tagID, userID string) (*model.Tag, error)
	ReplaceTag(ctx context.Context, tag *model.Tag) (bool, error)
	DeleteTag(ctx context.Context, tagID, userID string) error
	TagExists(ctx context.Context, tagID, userID string) (bool, error)
}
