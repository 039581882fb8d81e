package service

import (
	"skillcheck/config"
)

// ClassifierService maps an aggregate percentage onto a discrete proficiency
// label and a pass/fail verdict. Labels are monotonic in percentage: a higher
// score never yields a lower label.
type ClassifierService interface {
	Classify(percentage int) (confidenceLevel string, passed bool)
}

type classifierService struct {
	bands         []config.ProficiencyBand
	passThreshold int
}

func NewClassifierService(cfg *config.Config) ClassifierService {
	return &classifierService{
		bands:         cfg.Assessment.ProficiencyBands,
		passThreshold: cfg.Assessment.PassThresholdPercent,
	}
}

func (s *classifierService) Classify(percentage int) (string, bool) {
	// Bands are descending; stop at the first one the percentage reaches,
	// otherwise fall through to the lowest band.
	label := ""
	for _, band := range s.bands {
		label = band.Label
		if percentage >= band.MinPercent {
			break
		}
	}
	return label, percentage >= s.passThreshold
}
