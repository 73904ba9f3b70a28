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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection("notes"),
	}
}

func (r *NotesRepo) InsertNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// FindNotes lists the user's notes matching the filter, most recently
// updated first. The search term matches as a case-insensitive
// substring of title or content.
func (r *NotesRepo) FindNotes(ctx context.Context, userID string, filter NoteFilter) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	query := bson.M{"user_id": userID}

	if filter.SearchTerm != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.SearchTerm), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		}
	}
	if filter.FolderID != "" {
		query["folder_id"] = filter.FolderID
	}
	if filter.TagID != "" {
		query["tags"] = filter.TagID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database")
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// FindNote returns (nil, nil) when the note is absent or owned by
// someone else.
func (r *NotesRepo) FindNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &note, nil
}

// ReplaceNote swaps the whole document, scoped to the owner. Returns
// false when nothing matched.
func (r *NotesRepo) ReplaceNote(ctx context.Context, note *model.Note) (bool, error) {
	timer := utils.TrackDBOperation("replace", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": note.NoteID, "user_id": note.UserID}
	result, err := r.MongoCollection.ReplaceOne(ctx, filter, note)
	if err != nil {
		utils.TrackError("database")
		return false, fmt.Errorf("replace note: %w", err)
	}
	return result.MatchedCount > 0, nil
}

// DeleteNote is idempotent; deleting an absent or foreign note is not
// an error.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}
	if _, err := r.MongoCollection.DeleteOne(ctx, filter); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
