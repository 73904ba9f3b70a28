package usecase

import (
	"context"
	"time"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/utils"
)

type NotesService struct {
	NotesRepo repository.Notes
	Refs      *RefValidator
}

// ListNotes returns the user's notes matching the optional filters,
// most recently updated first.
func (svc *NotesService) ListNotes(ctx context.Context, userID string, query dto.NoteListQuery) ([]*model.Note, error) {
	return svc.NotesRepo.FindNotes(ctx, userID, repository.NoteFilter{
		SearchTerm: query.SearchTerm,
		FolderID:   query.FolderID,
		TagID:      query.TagID,
	})
}

func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.FindNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

// CreateNote validates every folder/tag reference before persisting;
// a single bad reference aborts the creation.
func (svc *NotesService) CreateNote(ctx context.Context, userID string, req *dto.NoteRequest) (*model.Note, error) {
	folderID := normalizeFolderID(req.FolderID)
	tags := normalizeTags(req.Tags)

	if err := svc.Refs.ValidateNoteRefs(ctx, userID, folderID, tags); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &model.Note{
		NoteID:    utils.NewID(),
		Title:     req.Title,
		Content:   req.Content,
		FolderID:  folderID,
		Tags:      tags,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.NotesRepo.InsertNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackResourceOperation("notes", "create")
	return note, nil
}

// UpdateNote applies full replacement semantics: fields absent from the
// request are cleared. References are re-validated first and the
// creation timestamp is preserved.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, req *dto.NoteRequest) (*model.Note, error) {
	existing, err := svc.NotesRepo.FindNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	folderID := normalizeFolderID(req.FolderID)
	tags := normalizeTags(req.Tags)

	if err := svc.Refs.ValidateNoteRefs(ctx, userID, folderID, tags); err != nil {
		return nil, err
	}

	note := &model.Note{
		NoteID:    noteID,
		Title:     req.Title,
		Content:   req.Content,
		FolderID:  folderID,
		Tags:      tags,
		UserID:    userID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	matched, err := svc.NotesRepo.ReplaceNote(ctx, note)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}

	utils.TrackResourceOperation("notes", "update")
	return note, nil
}

// DeleteNote is idempotent: deleting an absent or foreign note
// succeeds silently.
func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}
	utils.TrackResourceOperation("notes", "delete")
	return nil
}

// normalizeFolderID maps an empty folder reference to "unfiled".
func normalizeFolderID(folderID string) *string {
	if folderID == "" {
		return nil
	}
	return &folderID
}

// normalizeTags drops empty entries and keeps tags non-nil so the
// stored document always carries an array.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}
