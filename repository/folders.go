package repository

import (
	"context"
	"fmt"
	"regexp"

	"noteful/model"
	"noteful/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoldersRepo struct {
	MongoCollection *mongo.Collection
}

func GetFoldersRepo(db *mongo.Database) *FoldersRepo {
	return &FoldersRepo{
		MongoCollection: db.Collection("folders"),
	}
}

func (r *FoldersRepo) InsertFolder(ctx context.Context, folder *model.Folder) error {
	timer := utils.TrackDBOperation("insert", "folders")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, folder); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("insert folder: %w", err)
	}
	return nil
}

func (r *FoldersRepo) FindFolders(ctx context.Context, userID, searchTerm string) ([]*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	query := bson.M{"user_id": userID}
	if searchTerm != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("find folders: %w", err)
	}
	defer cursor.Close(ctx)

	folders := []*model.Folder{}
	if err := cursor.All(ctx, &folders); err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("decode folders: %w", err)
	}
	return folders, nil
}

func (r *FoldersRepo) FindFolder(ctx context.Context, folderID, userID string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": folderID, "user_id": userID}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, fmt.Errorf("find folder: %w", err)
	}
	return &folder, nil
}

func (r *FoldersRepo) ReplaceFolder(ctx context.Context, folder *model.Folder) (bool, error) {
	timer := utils.TrackDBOperation("replace", "folders")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": folder.FolderID, "user_id": folder.UserID}
	result, err := r.MongoCollection.ReplaceOne(ctx, filter, folder)
	if err != nil {
		utils.TrackError("database")
		return false, fmt.Errorf("replace folder: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *FoldersRepo) DeleteFolder(ctx context.Context, folderID, userID string) error {
	timer := utils.TrackDBOperation("delete", "folders")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": folderID, "user_id": userID}
	if _, err := r.MongoCollection.DeleteOne(ctx, filter); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

// FolderExists reports whether the folder exists and belongs to the
// user. Reference validation on notes goes through here.
func (r *FoldersRepo) FolderExists(ctx context.Context, folderID, userID string) (bool, error) {
	timer := utils.TrackDBOperation("count", "folders")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"_id": folderID, "user_id": userID})
	if err != nil {
		utils.TrackError("database")
		return false, fmt.Errorf("count folders: %w", err)
	}
	return count > 0, nil
}
