package repository

import (
	"errors"

	"skillcheck/internal/model"

	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.AssessmentResult) error
	FindByAssessmentID(assessmentID string) (*model.AssessmentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.AssessmentResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByAssessmentID(assessmentID string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.db.First(&result, "assessment_id = ?", assessmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}
