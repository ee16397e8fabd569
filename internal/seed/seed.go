package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/registrar/academics/internal/app/models"
	appRepos "github.com/registrar/academics/internal/app/repositories"
	"github.com/registrar/academics/internal/db"
)

type departmentData struct {
	name     string
	programs []appModels.Program
	courses  []appModels.Course
}

var sampleDepartments = []departmentData{
	{
		name: "Computer Science",
		programs: []appModels.Program{
			{Name: "Computer Programming", Type: "diploma"},
			{Name: "Software Engineering", Type: "bachelor"},
		},
		courses: []appModels.Course{
			{Title: "Introduction to Programming", Code: "CS101"},
			{Title: "Data Structures", Code: "CS201"},
		},
	},
	{
		name: "Business",
		programs: []appModels.Program{
			{Name: "Business Administration", Type: "diploma"},
		},
		courses: []appModels.Course{
			{Title: "Principles of Accounting", Code: "BUS110"},
		},
	},
	{
		name: "Health Sciences",
		programs: []appModels.Program{
			{Name: "Practical Nursing", Type: "diploma"},
		},
		courses: []appModels.Course{
			{Title: "Anatomy and Physiology", Code: "HLT120"},
		},
	},
}

var sampleTerms = []appModels.Term{
	{Name: "Fall 2024", StartDate: date("2024-09-03"), EndDate: date("2024-12-20")},
	{Name: "Winter 2025", StartDate: date("2025-01-06"), EndDate: date("2025-04-25")},
}

func date(s string) *string {
	return &s
}

// CreateDefaultData inserts sample departments, programs, terms and courses when the
// departments table is empty. It reports whether anything was inserted.
func CreateDefaultData(ctx context.Context, database *db.Database, lgr zerolog.Logger) (bool, error) {
	repos := appRepos.NewRepositories(database)

	count, err := repos.Departments.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("departments", count).Msg("Departments already present, skipping seed data")
		return false, nil
	}

	lgr.Info().Msg("Creating default data (departments, programs, terms, courses)...")
	err = database.WithTransaction(ctx, func(ctx context.Context) error {
		var firstTermID int64
		for i := range sampleTerms {
			term := sampleTerms[i]
			id, err := repos.Terms.Insert(ctx, &term)
			if err != nil {
				return fmt.Errorf("failed to create term %q: %w", term.Name, err)
			}
			if i == 0 {
				firstTermID = id
			}
		}

		for _, d := range sampleDepartments {
			departmentID, err := repos.Departments.Insert(ctx, &appModels.Department{Name: d.name})
			if err != nil {
				return fmt.Errorf("failed to create department %q: %w", d.name, err)
			}

			for _, program := range d.programs {
				program.DepartmentID = &departmentID
				if _, err := repos.Programs.Insert(ctx, &program); err != nil {
					return fmt.Errorf("failed to create program %q: %w", program.Name, err)
				}
			}

			for _, course := range d.courses {
				course.DepartmentID = &departmentID
				course.TermID = &firstTermID
				if _, err := repos.Courses.Insert(ctx, &course); err != nil {
					return fmt.Errorf("failed to create course %q: %w", course.Code, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default data")
		return false, err
	}

	lgr.Info().Int("departments", len(sampleDepartments)).Msg("Default data created")
	return true, nil
}
