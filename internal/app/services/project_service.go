package services

import (
	"context"
	"strings"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
)

// ProjectRepository defines the storage operations the project service
// depends on
type ProjectRepository interface {
	List(ctx context.Context, page, size int, name, id string) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// ListProjects retrieves a page of projects with optional name and id filters
func (s *ProjectService) ListProjects(ctx context.Context, page, size int, name, id string) ([]*models.Project, error) {
	return s.projectRepo.List(ctx, page, size, name, id)
}

// GetProjectByID retrieves a single project
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// CreateProject validates and stores a new project
func (s *ProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(req.Head) == "" {
		return nil, apperrors.NewValidationError("head cannot be empty")
	}

	project := &models.Project{
		Name:        req.Name,
		Head:        req.Head,
		Description: req.Description,
	}

	return s.projectRepo.Create(ctx, project)
}

// UpdateProject applies a partial update to an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if req.Head != nil && strings.TrimSpace(*req.Head) == "" {
		return nil, apperrors.NewValidationError("head cannot be empty")
	}

	return s.projectRepo.Update(ctx, id, req.ToPatch())
}

// DeleteProject removes a project by id
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
