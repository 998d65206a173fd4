package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection("students"),
	}
}

// List retrieves students with pagination and optional filters. The
// name filter is a case-insensitive substring match; the id filter is
// an exact match. Both apply jointly when given.
func (r *StudentRepository) List(ctx context.Context, page, size int, name, id string) ([]*models.Student, error) {
	filter := bson.M{}

	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	if id != "" {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.ErrInvalidObjectID
		}
		filter["_id"] = objectID
	}

	skip, limit := calculateSkipLimit(page, size)
	findOpts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]*models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by its hex identifier
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	var student models.Student
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Create inserts a student and re-reads it by the assigned identifier
// so the caller sees the canonical stored form.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.ProjectIDs == nil {
		student.ProjectIDs = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error inserting student: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	var created models.Student
	if err := r.collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("error reading back created student: %w", err)
	}

	return &created, nil
}

// Update applies a partial update. The write itself does not report a
// missing identifier; absence surfaces through the follow-up read.
func (r *StudentRepository) Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	// An empty $set document is rejected by the server, so an empty
	// patch skips straight to the read.
	setDoc := patch.SetDocument()
	if len(setDoc) > 0 {
		_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": setDoc})
		if err != nil {
			return nil, fmt.Errorf("error updating student: %w", err)
		}
	}

	var updated models.Student
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error reading back updated student: %w", err)
	}

	return &updated, nil
}

// Delete removes a student. Returns true iff exactly one record was
// removed.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.ErrInvalidObjectID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return result.DeletedCount == 1, nil
}
