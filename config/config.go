package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	Assessment   Assessment
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Assessment holds all composition/grading knobs. The curriculum and the
// proficiency bands are fixed at startup; bucket sizes change here, never
// per request.
type Assessment struct {
	TimeLimitMinutes        int
	PassThresholdPercent    int
	EvaluatorTimeoutSeconds int
	Curriculum              []CurriculumBucket
	ProficiencyBands        []ProficiencyBand
}

// CurriculumBucket is one draw instruction: pick Count questions of the given
// type/difficulty and assign PointsPerQuestion to each. SkillAgnostic buckets
// (aptitude) draw from the generic pool instead of the requested skill.
type CurriculumBucket struct {
	QuestionType      string
	Difficulty        string
	Count             int
	PointsPerQuestion int
	SkillAgnostic     bool
}

// ProficiencyBand maps a minimum percentage onto a confidence label.
// Bands must be listed in descending MinPercent order.
type ProficiencyBand struct {
	MinPercent int
	Label      string
}

// DefaultCurriculum is the standard 21-question assessment: four
// technical/aptitude sections of five questions plus a single coding
// challenge, in delivery order.
func DefaultCurriculum() []CurriculumBucket {
	return []CurriculumBucket{
		{QuestionType: "multiple_choice", Difficulty: "beginner", Count: 5, PointsPerQuestion: 10},
		{QuestionType: "multiple_choice", Difficulty: "intermediate", Count: 5, PointsPerQuestion: 20},
		{QuestionType: "multiple_choice", Difficulty: "advanced", Count: 5, PointsPerQuestion: 30},
		{QuestionType: "aptitude", Count: 5, PointsPerQuestion: 5, SkillAgnostic: true},
		{QuestionType: "coding", Count: 1, PointsPerQuestion: 30},
	}
}

func DefaultProficiencyBands() []ProficiencyBand {
	return []ProficiencyBand{
		{MinPercent: 85, Label: "Expert"},
		{MinPercent: 70, Label: "Advanced"},
		{MinPercent: 50, Label: "Intermediate"},
		{MinPercent: 0, Label: "Beginner"},
	}
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ASSESSMENT_TIME_LIMIT_MINUTES", 45)
	viper.SetDefault("ASSESSMENT_PASS_THRESHOLD", 60)
	viper.SetDefault("EVALUATOR_TIMEOUT_SECONDS", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	config.Assessment.TimeLimitMinutes = viper.GetInt("ASSESSMENT_TIME_LIMIT_MINUTES")
	config.Assessment.PassThresholdPercent = viper.GetInt("ASSESSMENT_PASS_THRESHOLD")
	config.Assessment.EvaluatorTimeoutSeconds = viper.GetInt("EVALUATOR_TIMEOUT_SECONDS")
	config.Assessment.Curriculum = DefaultCurriculum()
	config.Assessment.ProficiencyBands = DefaultProficiencyBands()

	log.Info().Str("port", config.Server.Port).Int("time_limit_minutes", config.Assessment.TimeLimitMinutes).Msg("Config loaded")
	return &config, nil
}
