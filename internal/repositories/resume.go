package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/models"
)

var ErrResumeNotFound = fmt.Errorf("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByIDForUser(id, userID uuid.UUID) (*models.Resume, error)
	FindByUserID(userID uuid.UUID) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume record: %w", err)
	}

	return nil
}

// FindByIDForUser implements ResumeRepository. Records are scoped to their
// owner; another user's record behaves as if it did not exist.
func (r *resumeRepository) FindByIDForUser(id, userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrResumeNotFound
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindByUserID implements ResumeRepository.
func (r *resumeRepository) FindByUserID(userID uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}
