package services

import (
	"context"
	"strings"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
)

// StudentRepository defines the storage operations the student service
// depends on
type StudentRepository interface {
	List(ctx context.Context, page, size int, name, id string) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// ListStudents retrieves a page of students with optional name and id filters
func (s *StudentService) ListStudents(ctx context.Context, page, size int, name, id string) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, page, size, name, id)
}

// GetStudentByID retrieves a single student
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent validates and stores a new student
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	student := &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Branch: req.Branch,
	}

	return s.studentRepo.Create(ctx, student)
}

// UpdateStudent applies a partial update to an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	return s.studentRepo.Update(ctx, id, req.ToPatch())
}

// DeleteStudent removes a student by id
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
