package services

import (
	"github.com/rs/zerolog"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/app/repositories"
	"github.com/registrar/academics/internal/pkg/validation"
)

// Services holds one service per entity
type Services struct {
	Students        *EntityService[models.Student]
	Instructors     *EntityService[models.Instructor]
	Departments     *EntityService[models.Department]
	Programs        *EntityService[models.Program]
	Courses         *EntityService[models.Course]
	Terms           *EntityService[models.Term]
	Enrollments     *EntityService[models.Enrollment]
	Assignments     *EntityService[models.Assignment]
	CourseSchedules *EntityService[models.CourseSchedule]
}

// NewServices builds every entity service on top of repos; tx backs atomic batches
func NewServices(repos *repositories.Repositories, tx bulk.Transactor, logger zerolog.Logger) *Services {
	v := validation.New()
	models.RegisterValidations(v)
	deps := Dependencies{Validate: v, Tx: tx, Logger: logger}

	return &Services{
		Students: NewEntityService[models.Student](repos.Students,
			bulk.Noun{Singular: "student", Plural: "students"}, models.DefaultStudent, deps),
		Instructors: NewEntityService[models.Instructor](repos.Instructors,
			bulk.Noun{Singular: "instructor", Plural: "instructors"}, models.DefaultInstructor, deps),
		Departments: NewEntityService[models.Department](repos.Departments,
			bulk.Noun{Singular: "department", Plural: "departments"}, nil, deps),
		Programs: NewEntityService[models.Program](repos.Programs,
			bulk.Noun{Singular: "program", Plural: "programs"}, models.DefaultProgram, deps),
		Courses: NewEntityService[models.Course](repos.Courses,
			bulk.Noun{Singular: "course", Plural: "courses"}, nil, deps),
		Terms: NewEntityService[models.Term](repos.Terms,
			bulk.Noun{Singular: "term", Plural: "terms"}, nil, deps),
		Enrollments: NewEntityService[models.Enrollment](repos.Enrollments,
			bulk.Noun{Singular: "enrollment", Plural: "enrollments"}, nil, deps),
		Assignments: NewEntityService[models.Assignment](repos.Assignments,
			bulk.Noun{Singular: "assignment", Plural: "assignments"}, nil, deps),
		CourseSchedules: NewEntityService[models.CourseSchedule](repos.CourseSchedules,
			bulk.Noun{Singular: "course schedule", Plural: "course schedules"}, nil, deps),
	}
}
