package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcheck/config"
	"skillcheck/internal/model"
)

// The seed must let a fresh deployment compose an assessment for every
// shipped skill bank: each curriculum bucket needs at least its draw count.
func TestSeedQuestions_CoverEveryCurriculumBucket(t *testing.T) {
	questions := seedQuestions()
	curriculum := config.DefaultCurriculum()

	countBucket := func(skill string, qType model.QuestionType, difficulty model.Difficulty) int {
		n := 0
		for _, q := range questions {
			if q.Type != qType {
				continue
			}
			if skill != "" && q.Skill != skill {
				continue
			}
			if difficulty != "" && q.Difficulty != difficulty {
				continue
			}
			n++
		}
		return n
	}

	for _, skill := range []string{"Python", "JavaScript", "React"} {
		for _, bucket := range curriculum {
			bucketSkill := skill
			if bucket.SkillAgnostic {
				bucketSkill = ""
			}
			got := countBucket(bucketSkill, model.QuestionType(bucket.QuestionType), model.Difficulty(bucket.Difficulty))
			assert.GreaterOrEqual(t, got, bucket.Count,
				"skill %s: bucket %s/%s needs %d, seed has %d", skill, bucket.QuestionType, bucket.Difficulty, bucket.Count, got)
		}
	}
}

func TestSeedQuestions_WellFormed(t *testing.T) {
	for _, q := range seedQuestions() {
		require.NotEmpty(t, q.Skill)
		require.NotEmpty(t, q.Text)
		require.NotEmpty(t, q.ReferenceAnswer)
		require.Greater(t, q.Points, 0)

		if q.Type == model.QuestionTypeMultipleChoice || q.Type == model.QuestionTypeAptitude {
			opts := q.OptionList()
			require.GreaterOrEqual(t, len(opts), 2, "question %q", q.Text)
			matches := 0
			for _, opt := range opts {
				if opt == q.ReferenceAnswer {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "question %q: reference answer must match exactly one option", q.Text)
		}
	}
}
