package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	ProjectRepository *ProjectRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		ProjectRepository: NewProjectRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
