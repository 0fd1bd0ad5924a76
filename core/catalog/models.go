package catalog

import (
	"github.com/go-playground/validator/v10"

	"github.com/ethiopulse/backend/core"
)

// Material types
const (
	MaterialPDF   = "pdf"
	MaterialVideo = "video"
	MaterialLink  = "link"
	MaterialNote  = "note"
)

// Quiz types
const (
	QuizDaily    = "Daily"
	QuizWeekly   = "Weekly"
	QuizChapter  = "Chapter"
	QuizNational = "National Exam Simulation"
)

// Quiz difficulties
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type (
	Lesson struct {
		ID                 string   `json:"id"`
		Title              string   `json:"title"`
		LearningObjectives []string `json:"learning_objectives"`
		Materials          []string `json:"materials"` // Material IDs
		IsCompleted        bool     `json:"is_completed"`
	}

	Unit struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Lessons     []Lesson `json:"lessons"`
		IsCompleted bool     `json:"is_completed"`
	}

	Course struct {
		ID          string      `json:"id"`
		Title       string      `json:"title"`
		Teacher     string      `json:"teacher"`
		Thumbnail   string      `json:"thumbnail"`
		Progress    int         `json:"progress"` // 0-100
		Subject     string      `json:"subject"`
		Grade       core.Grade  `json:"grade"`
		Stream      core.Stream `json:"stream,omitempty"`
		IsFavorite  bool        `json:"is_favorite"`
		Description string      `json:"description"`
		Units       []Unit      `json:"units"`
	}

	Material struct {
		ID           string        `json:"id"`
		Title        string        `json:"title"`
		Type         string        `json:"type"` // pdf | video | link | note
		Subject      string        `json:"subject"`
		Chapter      string        `json:"chapter"`
		UnitID       string        `json:"unit_id,omitempty"`
		Date         string        `json:"date"` // YYYY-MM-DD
		IsBookmarked bool          `json:"is_bookmarked"`
		Language     core.Language `json:"language"`
	}

	Quiz struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		Subject         string `json:"subject"`
		QuestionsCount  int    `json:"questions_count"`
		DurationMinutes int    `json:"duration_minutes"`
		Difficulty      string `json:"difficulty"` // Easy | Medium | Hard
		Completed       bool   `json:"completed"`
		Score           *int   `json:"score,omitempty"` // 0-100, set on completion
		Type            string `json:"type"`
	}
)

type CourseFilter struct {
	Search        string `query:"search"`
	Subject       string `query:"subject"`
	Grade         string `query:"grade"`
	FavoritesOnly bool   `query:"favorites"`
}

func (f *CourseFilter) IsEmpty() bool {
	return f.Search == "" && f.Subject == "" && f.Grade == "" && !f.FavoritesOnly
}

func (f *CourseFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Subject = core.CleanString(f.Subject)
}

type MaterialFilter struct {
	Search         string `query:"search"`
	Subject        string `query:"subject"`
	Type           string `query:"type"`
	BookmarkedOnly bool   `query:"bookmarked"`
}

func (f *MaterialFilter) IsEmpty() bool {
	return f.Search == "" && f.Subject == "" && f.Type == "" && !f.BookmarkedOnly
}

func (f *MaterialFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Subject = core.CleanString(f.Subject)
	f.Type = core.CleanString(f.Type, true /* lower */)
}

// QuizResult records a learner's score for a quiz.
type QuizResult struct {
	Score int `json:"score" validate:"min=0,max=100"`
}

func (qr *QuizResult) Validate(validate *validator.Validate) error {
	return validate.Struct(qr)
}
