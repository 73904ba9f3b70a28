package usecase

import (
	"context"
	"time"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/utils"
)

type FoldersService struct {
	FoldersRepo repository.Folders
}

func (svc *FoldersService) ListFolders(ctx context.Context, userID, searchTerm string) ([]*model.Folder, error) {
	return svc.FoldersRepo.FindFolders(ctx, userID, searchTerm)
}

func (svc *FoldersService) GetFolder(ctx context.Context, folderID, userID string) (*model.Folder, error) {
	folder, err := svc.FoldersRepo.FindFolder(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrNotFound
	}
	return folder, nil
}

func (svc *FoldersService) CreateFolder(ctx context.Context, userID string, req *dto.FolderRequest) (*model.Folder, error) {
	now := time.Now()
	folder := &model.Folder{
		FolderID:  utils.NewID(),
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.FoldersRepo.InsertFolder(ctx, folder); err != nil {
		return nil, err
	}

	utils.TrackResourceOperation("folders", "create")
	return folder, nil
}

func (svc *FoldersService) UpdateFolder(ctx context.Context, folderID, userID string, req *dto.FolderRequest) (*model.Folder, error) {
	existing, err := svc.FoldersRepo.FindFolder(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	folder := &model.Folder{
		FolderID:  folderID,
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	matched, err := svc.FoldersRepo.ReplaceFolder(ctx, folder)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}

	utils.TrackResourceOperation("folders", "update")
	return folder, nil
}

func (svc *FoldersService) DeleteFolder(ctx context.Context, folderID, userID string) error {
	if err := svc.FoldersRepo.DeleteFolder(ctx, folderID, userID); err != nil {
		return err
	}
	utils.TrackResourceOperation("folders", "delete")
	return nil
}
