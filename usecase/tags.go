package usecase

import (
	"context"
	"time"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/utils"
)

type TagsService struct {
	TagsRepo repository.Tags
}

func (svc *TagsService) ListTags(ctx context.Context, userID, searchTerm string) ([]*model.Tag, error) {
	return svc.TagsRepo.FindTags(ctx, userID, searchTerm)
}

func (svc *TagsService) GetTag(ctx context.Context, tagID, userID string) (*model.Tag, error) {
	tag, err := svc.TagsRepo.FindTag(ctx, tagID, userID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	return tag, nil
}

func (svc *TagsService) CreateTag(ctx context.Context, userID string, req *dto.TagRequest) (*model.Tag, error) {
	now := time.Now()
	tag := &model.Tag{
		TagID:     utils.NewID(),
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.TagsRepo.InsertTag(ctx, tag); err != nil {
		return nil, err
	}

	utils.TrackResourceOperation("tags", "create")
	return tag, nil
}

func (svc *TagsService) UpdateTag(ctx context.Context, tagID, userID string, req *dto.TagRequest) (*model.Tag, error) {
	existing, err := svc.TagsRepo.FindTag(ctx, tagID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	tag := &model.Tag{
		TagID:     tagID,
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}

	matched, err := svc.TagsRepo.ReplaceTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}

	utils.TrackResourceOperation("tags", "update")
	return tag, nil
}

func (svc *TagsService) DeleteTag(ctx context.Context, tagID, userID string) error {
	if err := svc.TagsRepo.DeleteTag(ctx, tagID, userID); err != nil {
		return err
	}
	utils.TrackResourceOperation("tags", "delete")
	return nil
}
