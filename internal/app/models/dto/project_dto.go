package dto

import "github.com/etudeproject/etude/internal/app/models"

// CreateProjectRequest represents project creation data
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Head        string `json:"head" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents a partial project update. Absent
// fields stay nil and are not written.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Head        *string `json:"head,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// ToPatch converts the request into a model patch
func (r *UpdateProjectRequest) ToPatch() *models.ProjectPatch {
	return &models.ProjectPatch{
		Name:        r.Name,
		Head:        r.Head,
		Description: r.Description,
	}
}

// ProjectResponse represents public project information with all
// identifiers rendered as strings
type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Head        string   `json:"head"`
	Description string   `json:"description"`
	StudentIDs  []string `json:"student_ids"`
}

// NewProjectResponse maps a stored project to its response shape
func NewProjectResponse(project *models.Project) *ProjectResponse {
	studentIDs := make([]string, 0, len(project.StudentIDs))
	for _, id := range project.StudentIDs {
		studentIDs = append(studentIDs, id.Hex())
	}

	return &ProjectResponse{
		ID:          project.ID.Hex(),
		Name:        project.Name,
		Head:        project.Head,
		Description: project.Description,
		StudentIDs:  studentIDs,
	}
}

// NewProjectListResponse maps a slice of stored projects
func NewProjectListResponse(projects []*models.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, NewProjectResponse(project))
	}
	return responses
}
