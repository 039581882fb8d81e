package repository

import (
	"skillcheck/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository is the question bank accessor. FindBucket is what the
// composer draws from; an empty skill matches any skill (aptitude pool).
type QuestionRepository interface {
	Create(question *model.Question) error
	CreateBatch(questions []model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindBucket(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error)
	FindAll(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error)
	Count() (int64, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindBucket(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Where("type = ?", qType)
	if skill != "" {
		query = query.Where("skill = ?", skill)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	// Stable bank order so selection is reproducible for a fixed seed.
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll(skill string, qType model.QuestionType, difficulty model.Difficulty) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Order("created_at desc")
	if skill != "" {
		query = query.Where("skill = ?", skill)
	}
	if qType != "" {
		query = query.Where("type = ?", qType)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
