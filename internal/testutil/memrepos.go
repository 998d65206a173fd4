// Package testutil provides in-memory repository implementations for
// tests. They mirror the MongoDB repositories' contracts: hex
// identifiers, case-insensitive name filtering, skip/limit pagination
// and canonical re-reads.
package testutil

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
	"github.com/etudeproject/etude/internal/pkg/helpers"
)

// MemStudentRepo is an in-memory stand-in for the student repository.
type MemStudentRepo struct {
	mu       sync.Mutex
	students map[primitive.ObjectID]models.Student
	order    []primitive.ObjectID
}

func NewMemStudentRepo() *MemStudentRepo {
	return &MemStudentRepo{students: make(map[primitive.ObjectID]models.Student)}
}

func (r *MemStudentRepo) List(_ context.Context, page, size int, name, id string) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var idFilter *primitive.ObjectID
	if id != "" {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.ErrInvalidObjectID
		}
		idFilter = &objectID
	}

	matched := make([]*models.Student, 0)
	for _, key := range r.order {
		student, ok := r.students[key]
		if !ok {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(student.Name), strings.ToLower(name)) {
			continue
		}
		if idFilter != nil && student.ID != *idFilter {
			continue
		}
		copied := student
		matched = append(matched, &copied)
	}

	return pageSlice(matched, page, size), nil
}

func (r *MemStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[objectID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := student
	return &copied, nil
}

func (r *MemStudentRepo) Create(_ context.Context, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *student
	stored.ID = primitive.NewObjectID()
	if stored.ProjectIDs == nil {
		stored.ProjectIDs = []primitive.ObjectID{}
	}

	r.students[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	copied := stored
	return &copied, nil
}

func (r *MemStudentRepo) Update(_ context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[objectID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Email != nil {
		student.Email = *patch.Email
	}
	if patch.Course != nil {
		student.Course = *patch.Course
	}
	if patch.Branch != nil {
		student.Branch = *patch.Branch
	}

	r.students[objectID] = student
	copied := student
	return &copied, nil
}

func (r *MemStudentRepo) Delete(_ context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[objectID]; !ok {
		return false, nil
	}
	delete(r.students, objectID)
	return true, nil
}

// MemProjectRepo is an in-memory stand-in for the project repository.
type MemProjectRepo struct {
	mu       sync.Mutex
	projects map[primitive.ObjectID]models.Project
	order    []primitive.ObjectID
}

func NewMemProjectRepo() *MemProjectRepo {
	return &MemProjectRepo{projects: make(map[primitive.ObjectID]models.Project)}
}

func (r *MemProjectRepo) List(_ context.Context, page, size int, name, id string) ([]*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var idFilter *primitive.ObjectID
	if id != "" {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.ErrInvalidObjectID
		}
		idFilter = &objectID
	}

	matched := make([]*models.Project, 0)
	for _, key := range r.order {
		project, ok := r.projects[key]
		if !ok {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(project.Name), strings.ToLower(name)) {
			continue
		}
		if idFilter != nil && project.ID != *idFilter {
			continue
		}
		copied := project
		matched = append(matched, &copied)
	}

	return pageSlice(matched, page, size), nil
}

func (r *MemProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[objectID]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	copied := project
	return &copied, nil
}

func (r *MemProjectRepo) Create(_ context.Context, project *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *project
	stored.ID = primitive.NewObjectID()
	if stored.StudentIDs == nil {
		stored.StudentIDs = []primitive.ObjectID{}
	}

	r.projects[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	copied := stored
	return &copied, nil
}

func (r *MemProjectRepo) Update(_ context.Context, id string, patch *models.ProjectPatch) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[objectID]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Head != nil {
		project.Head = *patch.Head
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}

	r.projects[objectID] = project
	copied := project
	return &copied, nil
}

func (r *MemProjectRepo) Delete(_ context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.ErrInvalidObjectID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[objectID]; !ok {
		return false, nil
	}
	delete(r.projects, objectID)
	return true, nil
}

// MemUserRepo is an in-memory stand-in for the user repository. Email
// uniqueness mirrors the unique index on the users collection.
type MemUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *MemUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, apperrors.ErrUserAlreadyExists
		}
	}

	stored := *user
	stored.ID = primitive.NewObjectID()
	r.users[stored.ID] = stored

	copied := stored
	return &copied, nil
}

func pageSlice[T any](matched []*T, page, size int) []*T {
	skip, limit := helpers.CalculateSkipLimit(page, size)
	if skip >= int64(len(matched)) {
		return []*T{}
	}
	end := skip + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end]
}
