package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etudeproject/etude/internal/app/controllers"
	"github.com/etudeproject/etude/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public;
// mutations on students and projects require a bearer token.
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	projectController *controllers.ProjectController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Welcome route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the student and project platform"})
	})

	// Student routes
	students := router.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)

		studentsProtected := students.Group("")
		studentsProtected.Use(authMiddleware.JWTAuth())
		{
			studentsProtected.POST("", studentController.CreateStudent)
			studentsProtected.PUT("/:id", studentController.UpdateStudent)
			studentsProtected.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	// Project routes
	projects := router.Group("/projects")
	{
		projects.GET("", projectController.GetAllProjects)
		projects.GET("/:id", projectController.GetProjectByID)

		projectsProtected := projects.Group("")
		projectsProtected.Use(authMiddleware.JWTAuth())
		{
			projectsProtected.POST("", projectController.CreateProject)
			projectsProtected.PUT("/:id", projectController.UpdateProject)
			projectsProtected.DELETE("/:id", projectController.DeleteProject)
		}
	}

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// User routes
	users := router.Group("/users")
	{
		users.POST("/signup", userController.Signup)
	}
}
