package repositories

import "github.com/registrar/academics/internal/db"

// Repositories holds all the repository instances
type Repositories struct {
	Students        *StudentRepository
	Instructors     *InstructorRepository
	Departments     *DepartmentRepository
	Programs        *ProgramRepository
	Courses         *CourseRepository
	Terms           *TermRepository
	Enrollments     *EnrollmentRepository
	Assignments     *AssignmentRepository
	CourseSchedules *CourseScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.Database) *Repositories {
	return &Repositories{
		Students:        NewStudentRepository(database),
		Instructors:     NewInstructorRepository(database),
		Departments:     NewDepartmentRepository(database),
		Programs:        NewProgramRepository(database),
		Courses:         NewCourseRepository(database),
		Terms:           NewTermRepository(database),
		Enrollments:     NewEnrollmentRepository(database),
		Assignments:     NewAssignmentRepository(database),
		CourseSchedules: NewCourseScheduleRepository(database),
	}
}
