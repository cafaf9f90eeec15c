package mongo

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollectionName = "progress"

// mongoProgressRepository implements repository.ProgressRepository.
// Each user has at most one document per calendar day.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new Progress repository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// UpsertDay applies the update to the user's entry for day and returns the stored result.
// day must already be normalized to midnight UTC.
func (r *mongoProgressRepository) UpsertDay(ctx context.Context, userID primitive.ObjectID, day time.Time, update repository.ProgressUpdate) (*domain.ProgressEntry, error) {
	if userID == primitive.NilObjectID || day.IsZero() {
		return nil, errors.New("progress entry requires userId and date")
	}

	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.BodyFat != nil {
		set["bodyFat"] = *update.BodyFat
	}
	for key, value := range update.Set {
		set["measurements."+key] = value
	}
	updateDoc := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if len(update.Increment) > 0 {
		inc := bson.M{}
		for key, value := range update.Increment {
			inc["measurements."+key] = value
		}
		updateDoc["$inc"] = inc
	}

	filter := bson.M{"userId": userID, "date": day}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var entry domain.ProgressEntry
	if err := r.collection.FindOneAndUpdate(ctx, filter, updateDoc, opts).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUpdateFailed
		}
		return nil, err
	}
	return &entry, nil
}

// ListByUser retrieves the user's entries dated in [from, to), newest first.
func (r *mongoProgressRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ProgressEntry, error) {
	filter := rangeFilter("date", from, to)
	filter["userId"] = userID
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "updatedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.ProgressEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureProgressIndexes creates necessary indexes for the progress collection.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			// one entry per user per day; also serves date-range queries
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	})
}
