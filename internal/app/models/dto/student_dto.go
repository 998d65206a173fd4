package dto

import "github.com/etudeproject/etude/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Course string `json:"course" binding:"required"`
	Branch string `json:"branch" binding:"required"`
}

// UpdateStudentRequest represents a partial student update. Absent
// fields stay nil and are not written.
type UpdateStudentRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Course *string `json:"course,omitempty"`
	Branch *string `json:"branch,omitempty"`
}

// ToPatch converts the request into a model patch
func (r *UpdateStudentRequest) ToPatch() *models.StudentPatch {
	return &models.StudentPatch{
		Name:   r.Name,
		Email:  r.Email,
		Course: r.Course,
		Branch: r.Branch,
	}
}

// StudentResponse represents public student information with all
// identifiers rendered as strings
type StudentResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Course     string   `json:"course"`
	Branch     string   `json:"branch"`
	ProjectIDs []string `json:"project_ids"`
}

// NewStudentResponse maps a stored student to its response shape
func NewStudentResponse(student *models.Student) *StudentResponse {
	projectIDs := make([]string, 0, len(student.ProjectIDs))
	for _, id := range student.ProjectIDs {
		projectIDs = append(projectIDs, id.Hex())
	}

	return &StudentResponse{
		ID:         student.ID.Hex(),
		Name:       student.Name,
		Email:      student.Email,
		Course:     student.Course,
		Branch:     student.Branch,
		ProjectIDs: projectIDs,
	}
}

// NewStudentListResponse maps a slice of stored students
func NewStudentListResponse(students []*models.Student) []*StudentResponse {
	responses := make([]*StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}
