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

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{
		collection: db.Collection("projects"),
	}
}

// List retrieves projects with pagination and optional filters. The
// name filter is a case-insensitive substring match; the id filter is
// an exact match. Both apply jointly when given.
func (r *ProjectRepository) List(ctx context.Context, page, size int, name, id string) ([]*models.Project, error) {
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
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := make([]*models.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("error decoding projects: %w", err)
	}

	return projects, nil
}

// GetByID retrieves a project by its hex identifier
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	var project models.Project
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return &project, nil
}

// Create inserts a project and re-reads it by the assigned identifier
// so the caller sees the canonical stored form.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.StudentIDs == nil {
		project.StudentIDs = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("error inserting project: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	var created models.Project
	if err := r.collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("error reading back created project: %w", err)
	}

	return &created, nil
}

// Update applies a partial update. The write itself does not report a
// missing identifier; absence surfaces through the follow-up read.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	setDoc := patch.SetDocument()
	if len(setDoc) > 0 {
		_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": setDoc})
		if err != nil {
			return nil, fmt.Errorf("error updating project: %w", err)
		}
	}

	var updated models.Project
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error reading back updated project: %w", err)
	}

	return &updated, nil
}

// Delete removes a project. Returns true iff exactly one record was
// removed.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.ErrInvalidObjectID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("error deleting project: %w", err)
	}

	return result.DeletedCount == 1, nil
}
