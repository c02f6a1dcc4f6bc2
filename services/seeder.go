package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/margdarshak/career-advisor/models"
	"github.com/margdarshak/career-advisor/repository"
)

// DatabaseSeeder handles database seeding operations
type DatabaseSeeder struct {
	repo *repository.GORMRepository
}

// NewDatabaseSeeder creates a new database seeder
func NewDatabaseSeeder(repo *repository.GORMRepository) *DatabaseSeeder {
	return &DatabaseSeeder{repo: repo}
}

var sampleColleges = []models.College{
	{
		Name:       "Government Arts College",
		Location:   "Chennai, Tamil Nadu",
		Type:       "Arts",
		Courses:    "B.A. Tamil, B.A. English, B.A. History, B.A. Economics",
		Facilities: "Library, Hostel, Computer Lab",
		Cutoff:     85.5,
		Contact:    "044-12345678",
		Website:    "www.gac-chennai.edu.in",
	},
	{
		Name:       "Government Science College",
		Location:   "Mumbai, Maharashtra",
		Type:       "Science",
		Courses:    "B.Sc. Physics, B.Sc. Chemistry, B.Sc. Mathematics, B.Sc. Biology",
		Facilities: "Laboratory, Library, Research Center",
		Cutoff:     92.3,
		Contact:    "022-87654321",
		Website:    "www.gsc-mumbai.edu.in",
	},
	{
		Name:       "Government Commerce College",
		Location:   "Delhi",
		Type:       "Commerce",
		Courses:    "B.Com, BBA, B.Com (Hons)",
		Facilities: "Computer Lab, Library, Placement Cell",
		Cutoff:     88.7,
		Contact:    "011-98765432",
		Website:    "www.gcc-delhi.edu.in",
	},
}

var sampleCourses = []models.Course{
	{
		Name:        "Bachelor of Arts",
		Stream:      "Arts",
		Description: "Comprehensive study of humanities and social sciences",
		Duration:    3,
		CareerPaths: "Teaching, Civil Services, Journalism, Social Work",
		Subjects:    "History, Political Science, Economics, Literature",
	},
	{
		Name:        "Bachelor of Science",
		Stream:      "Science",
		Description: "Foundation in scientific principles and research methodology",
		Duration:    3,
		CareerPaths: "Research, Teaching, Industry, Government Jobs",
		Subjects:    "Physics, Chemistry, Mathematics, Biology",
	},
	{
		Name:        "Bachelor of Commerce",
		Stream:      "Commerce",
		Description: "Business studies and financial management",
		Duration:    3,
		CareerPaths: "Banking, Accounting, Finance, Business",
		Subjects:    "Accounting, Business Law, Economics, Statistics",
	},
}

// SeedDatabase seeds the catalog reference data (idempotent)
func (s *DatabaseSeeder) SeedDatabase() error {
	ctx := context.Background()

	if s.isSeedingComplete(ctx) {
		slog.Info("Database seeding already completed, skipping")
		return nil
	}

	if err := s.seedColleges(ctx); err != nil {
		return err
	}
	if err := s.seedCourses(ctx); err != nil {
		return err
	}

	slog.Info("Database seeding completed successfully")
	return nil
}

// isSeedingComplete checks if seeding has already been completed
func (s *DatabaseSeeder) isSeedingComplete(ctx context.Context) bool {
	collegeCount, err := s.repo.CountColleges(ctx)
	if err != nil {
		return false
	}
	courseCount, err := s.repo.CountCourses(ctx)
	if err != nil {
		return false
	}

	return collegeCount >= int64(len(sampleColleges)) && courseCount >= int64(len(sampleCourses))
}

func (s *DatabaseSeeder) seedColleges(ctx context.Context) error {
	existing, err := s.repo.ListColleges(ctx, "", "")
	if err != nil {
		return fmt.Errorf("error checking colleges: %w", err)
	}

	present := map[string]bool{}
	for _, college := range existing {
		present[college.Name] = true
	}

	for _, college := range sampleColleges {
		if present[college.Name] {
			slog.Info("College already exists, skipping", "name", college.Name)
			continue
		}
		if err := s.repo.CreateCollege(ctx, &college); err != nil {
			return fmt.Errorf("failed to create college %s: %w", college.Name, err)
		}
		slog.Info("Created college", "name", college.Name)
	}
	return nil
}

func (s *DatabaseSeeder) seedCourses(ctx context.Context) error {
	existing, err := s.repo.ListCourses(ctx, "")
	if err != nil {
		return fmt.Errorf("error checking courses: %w", err)
	}

	present := map[string]bool{}
	for _, course := range existing {
		present[course.Name] = true
	}

	for _, course := range sampleCourses {
		if present[course.Name] {
			slog.Info("Course already exists, skipping", "name", course.Name)
			continue
		}
		if err := s.repo.CreateCourse(ctx, &course); err != nil {
			return fmt.Errorf("failed to create course %s: %w", course.Name, err)
		}
		slog.Info("Created course", "name", course.Name)
	}
	return nil
}
