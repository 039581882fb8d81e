package repository

import (
	"errors"
	"fmt"
	"time"

	"skillcheck/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionRepository is the assessment session store. It is the only shared
// mutable state in the engine: Put stores an open session with an expiry
// deadline, Get reads it back (lazily expiring), and MarkSubmitted performs
// the open -> submitted transition exactly once across concurrent callers.
type SessionRepository interface {
	Put(assessment *model.Assessment, expiresAt time.Time) error
	Get(assessmentID string) (*model.Assessment, error)
	MarkSubmitted(assessmentID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Put(assessment *model.Assessment, expiresAt time.Time) error {
	session, err := model.NewAssessmentSession(assessment, expiresAt)
	if err != nil {
		return err
	}
	return r.db.Create(session).Error
}

func (r *sessionRepository) Get(assessmentID string) (*model.Assessment, error) {
	var session model.AssessmentSession
	err := r.db.First(&session, "assessment_id = ?", assessmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load assessment session %s: %w", assessmentID, err)
	}

	if session.Status == model.AssessmentStatusExpired {
		return nil, ErrSessionExpired
	}
	if session.Status == model.AssessmentStatusOpen && time.Now().After(session.ExpiresAt) {
		// Expiry is a read-time derived status; flip it lazily. The condition
		// on status keeps this from clobbering a concurrent submission.
		res := r.db.Model(&model.AssessmentSession{}).
			Where("assessment_id = ? AND status = ?", assessmentID, model.AssessmentStatusOpen).
			Update("status", model.AssessmentStatusExpired)
		if res.Error != nil {
			log.Warn().Err(res.Error).Str("assessment_id", assessmentID).Msg("Failed to mark session expired")
		}
		return nil, ErrSessionExpired
	}

	return session.ToAssessment()
}

// MarkSubmitted is a compare-and-set on status: the conditional UPDATE
// succeeds for exactly one caller; everyone else observes AlreadySubmitted.
func (r *sessionRepository) MarkSubmitted(assessmentID string) error {
	res := r.db.Model(&model.AssessmentSession{}).
		Where("assessment_id = ? AND status = ?", assessmentID, model.AssessmentStatusOpen).
		Update("status", model.AssessmentStatusSubmitted)
	if res.Error != nil {
		return fmt.Errorf("failed to mark assessment %s submitted: %w", assessmentID, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.AssessmentSession{}).Where("assessment_id = ?", assessmentID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check assessment session %s: %w", assessmentID, err)
		}
		if count == 0 {
			return ErrSessionNotFound
		}
		return ErrAlreadySubmitted
	}
	return nil
}
