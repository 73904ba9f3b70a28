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

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(db *mongo.Database) *TagsRepo {
	return &TagsRepo{
		MongoCollection: db.Collection("tags"),
	}
}

func (r *TagsRepo) InsertTag(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, tag); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagsRepo) FindTags(ctx context.Context, userID, searchTerm string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	query := bson.M{"user_id": userID}
	if searchTerm != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("find tags: %w", err)
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

func (r *TagsRepo) FindTag(ctx context.Context, tagID, userID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": tagID, "user_id": userID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &tag, nil
}

func (r *TagsRepo) ReplaceTag(ctx context.Context, tag *model.Tag) (bool, error) {
	timer := utils.TrackDBOperation("replace", "tags")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": tag.TagID, "user_id": tag.UserID}
	result, err := r.MongoCollection.ReplaceOne(ctx, filter, tag)
	if err != nil {
		utils.TrackError("database")
		return false, fmt.Errorf("replace tag: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *TagsRepo) DeleteTag(ctx context.Context, tagID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": tagID, "user_id": userID}
	if _, err := r.MongoCollection.DeleteOne(ctx, filter); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// TagExists reports whether the tag exists and belongs to the user.
func (r *TagsRepo) TagExists(ctx context.Context, tagID, userID string) (bool, error) {
	timer := utils.TrackDBOperation("count", "tags")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"_id": tagID, "user_id": userID})
	if err != nil {
		utils.TrackError("database")
		return false, fmt.Errorf("count tags: %w", err)
	}
	return count > 0, nil
}
