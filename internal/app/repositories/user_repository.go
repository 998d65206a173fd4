package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
	"github.com/etudeproject/etude/internal/pkg/helpers"
)

// UserRepository handles database operations for users
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// GetByEmail retrieves a user by email, the account lookup key
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// EmailExists checks whether an account with the email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("error counting users: %w", err)
	}
	return count > 0, nil
}

// Create inserts a user and re-reads it by the assigned identifier.
// The unique email index turns a concurrent duplicate signup into
// ErrUserAlreadyExists here.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	var created models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("error reading back created user: %w", err)
	}

	return &created, nil
}

// CountStudents reports the size of the students collection; used by
// the health endpoint to verify connectivity.
func CountStudents(ctx context.Context, db *mongo.Database) (int64, error) {
	return db.Collection("students").CountDocuments(ctx, bson.M{})
}

// calculateSkipLimit is shared by the listing repositories
func calculateSkipLimit(page, size int) (skip, limit int64) {
	return helpers.CalculateSkipLimit(page, size)
}
