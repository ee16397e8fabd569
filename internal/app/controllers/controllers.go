package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/app/services"
)

// Handlers are the endpoints every entity exposes
type Handlers interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Archive(c *gin.Context)
}

// Controllers holds one controller per entity
type Controllers struct {
	Students        *EntityController[models.Student]
	Instructors     *EntityController[models.Instructor]
	Departments     *EntityController[models.Department]
	Programs        *EntityController[models.Program]
	Courses         *EntityController[models.Course]
	Terms           *EntityController[models.Term]
	Enrollments     *EntityController[models.Enrollment]
	Assignments     *EntityController[models.Assignment]
	CourseSchedules *EntityController[models.CourseSchedule]
}

// NewControllers creates a controller for every service
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Students:        NewEntityController[models.Student](svc.Students),
		Instructors:     NewEntityController[models.Instructor](svc.Instructors),
		Departments:     NewEntityController[models.Department](svc.Departments),
		Programs:        NewEntityController[models.Program](svc.Programs),
		Courses:         NewEntityController[models.Course](svc.Courses),
		Terms:           NewEntityController[models.Term](svc.Terms),
		Enrollments:     NewEntityController[models.Enrollment](svc.Enrollments),
		Assignments:     NewEntityController[models.Assignment](svc.Assignments),
		CourseSchedules: NewEntityController[models.CourseSchedule](svc.CourseSchedules),
	}
}
