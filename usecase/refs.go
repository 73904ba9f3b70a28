package usecase

import (
	"context"

	"noteful/repository"
)

// RefValidator confirms that folder and tag references on a note exist
// and belong to the requesting user. Any failed reference aborts the
// whole create or update before anything is persisted.
type RefValidator struct {
	FoldersRepo repository.Folders
	TagsRepo    repository.Tags
}

// ValidateNoteRefs checks the optional folder reference and every tag
// reference. The first bad reference wins.
func (v *RefValidator) ValidateNoteRefs(ctx context.Context, userID string, folderID *string, tagIDs []string) error {
	if folderID != nil {
		ok, err := v.FoldersRepo.FolderExists(ctx, *folderID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Kind: "folders"}
		}
	}

	for _, tagID := range tagIDs {
		ok, err := v.TagsRepo.TagExists(ctx, tagID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Kind: "tags"}
		}
	}

	return nil
}
