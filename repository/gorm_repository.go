package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/margdarshak/career-advisor/models"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when a user insert races or collides with an
// existing row on the email unique index.
var ErrDuplicateEmail = errors.New("user with this email already exists")

type GORMRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) *GORMRepository {
	return &GORMRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GORMRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&models.User{},
		&models.College{},
		&models.Course{},
		&models.QuizResult{},
		&models.StudyMaterial{},
	)
}

// User operations
func (r *GORMRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		slog.Error("Failed to create user", "error", err)
		return err
	}
	slog.Info("User created", "user_id", user.ID, "email", user.Email)
	return nil
}

func (r *GORMRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get user by email", "error", err, "email", email)
		return nil, err
	}
	return &user, nil
}

func (r *GORMRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get user by ID", "error", err, "user_id", id)
		return nil, err
	}
	return &user, nil
}

// Quiz result operations
func (r *GORMRepository) CreateQuizResult(ctx context.Context, result *models.QuizResult) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		slog.Error("Failed to create quiz result", "error", err, "user_id", result.UserID)
		return err
	}
	slog.Info("Quiz result created", "result_id", result.ID, "user_id", result.UserID, "score", result.Score)
	return nil
}

// Catalog operations. Both listings keep the storage's natural order; filters
// that match nothing yield an empty slice, not an error.
func (r *GORMRepository) ListColleges(ctx context.Context, location, collegeType string) ([]models.College, error) {
	colleges := []models.College{}
	query := r.db.WithContext(ctx)

	if location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if collegeType != "" {
		query = query.Where("type = ?", collegeType)
	}

	if err := query.Find(&colleges).Error; err != nil {
		slog.Error("Failed to list colleges", "error", err, "location", location, "type", collegeType)
		return nil, err
	}
	return colleges, nil
}

func (r *GORMRepository) ListCourses(ctx context.Context, stream string) ([]models.Course, error) {
	courses := []models.Course{}
	query := r.db.WithContext(ctx)

	if stream != "" {
		query = query.Where("stream = ?", stream)
	}

	if err := query.Find(&courses).Error; err != nil {
		slog.Error("Failed to list courses", "error", err, "stream", stream)
		return nil, err
	}
	return courses, nil
}

func (r *GORMRepository) CreateCollege(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		college.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(college).Error; err != nil {
		slog.Error("Failed to create college", "error", err, "name", college.Name)
		return err
	}
	slog.Info("College created", "college_id", college.ID, "name", college.Name)
	return nil
}

func (r *GORMRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		slog.Error("Failed to create course", "error", err, "name", course.Name)
		return err
	}
	slog.Info("Course created", "course_id", course.ID, "name", course.Name)
	return nil
}

func (r *GORMRepository) CountColleges(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.College{}).Count(&count).Error; err != nil {
		slog.Error("Failed to count colleges", "error", err)
		return 0, err
	}
	return count, nil
}

func (r *GORMRepository) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error; err != nil {
		slog.Error("Failed to count courses", "error", err)
		return 0, err
	}
	return count, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505). Duplicate registration must fail atomically at
// the database, not just at the pre-insert lookup.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
