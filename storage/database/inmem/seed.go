package inmemdb

import (
	"time"

	"github.com/ethiopulse/backend/core"
	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/user"
)

// seed loads the platform's stock content: one demo student account and the
// Ethiopian-curriculum course/material/quiz catalog.
func (db *DB) seed() error {
	now := time.Now().UTC()

	demo := user.User{
		ID:       "6fc8b2a0-3c61-44a4-9f25-0f1d95c2f001",
		Name:     "Abebe Bikila",
		Username: "abebe",
		Email:    "abebe.bikila@ethiopulse.edu.et",
		Grade:    "Grade 12",
		Stream:   core.StreamNaturalScience,
		Language: core.LanguageEnglish,
		Avatar:   "https://picsum.photos/seed/abebe/200/200",
		Points:   1250,
		Badges: []user.Badge{
			{ID: "b1", Name: "Early Bird", Icon: "🌅", Color: "bg-orange-100 text-orange-600"},
			{ID: "b2", Name: "Quiz Master", Icon: "🏆", Color: "bg-yellow-100 text-yellow-600"},
			{ID: "b3", Name: "Note Taker", Icon: "📝", Color: "bg-blue-100 text-blue-600"},
		},
		EnrolledCourses: []string{"c1", "c2", "c3"},
		Competencies: []user.CompetencyScore{
			{Domain: "Literacy", Score: 85, Level: "Advanced"},
			{Domain: "Numeracy", Score: 78, Level: "Proficient"},
			{Domain: "Scientific Reasoning", Score: 92, Level: "Master"},
			{Domain: "Digital Literacy", Score: 70, Level: "Developing"},
			{Domain: "Civic Understanding", Score: 88, Level: "Advanced"},
			{Domain: "Critical Thinking", Score: 82, Level: "Advanced"},
		},
		IsActive:  true,
		Roles:     []string{user.RoleStudent},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := demo.SetPassword("Selam!2024"); err != nil {
		return err
	}
	db.user.table[demo.ID] = &demo

	courses := []catalog.Course{
		{
			ID: "c1", Title: "Grade 12 Physics", Teacher: "Dr. Kassahun Tadesse",
			Thumbnail: "https://picsum.photos/seed/physics/400/250", Progress: 65,
			Subject: "Physics", Grade: "Grade 12", Stream: core.StreamNaturalScience, IsFavorite: true,
			Description: "Advanced physics topics including electromagnetism and quantum mechanics for Grade 12 students.",
			Units: []catalog.Unit{
				{
					ID: "u1-1", Title: "Unit 1: Electromagnetism", IsCompleted: true,
					Lessons: []catalog.Lesson{
						{ID: "l1-1-1", Title: "Electric Fields", LearningObjectives: []string{"Define electric field", "Calculate field strength"}, Materials: []string{"m1"}, IsCompleted: true},
						{ID: "l1-1-2", Title: "Magnetic Induction", LearningObjectives: []string{"Explain Faraday's Law"}, Materials: []string{}, IsCompleted: true},
					},
				},
				{
					ID: "u1-2", Title: "Unit 2: Quantum Mechanics", IsCompleted: false,
					Lessons: []catalog.Lesson{
						{ID: "l1-2-1", Title: "Photoelectric Effect", LearningObjectives: []string{"Describe the effect"}, Materials: []string{}, IsCompleted: false},
					},
				},
			},
		},
		{
			ID: "c2", Title: "Grade 12 Mathematics", Teacher: "Prof. Almaz Ayana",
			Thumbnail: "https://picsum.photos/seed/math/400/250", Progress: 40,
			Subject: "Mathematics", Grade: "Grade 12", Stream: core.StreamNaturalScience,
			Description: "Comprehensive mathematics covering calculus, vectors, and statistics for national exams.",
		},
		{
			ID: "c3", Title: "Grade 12 English", Teacher: "Ms. Tigist Assefa",
			Thumbnail: "https://picsum.photos/seed/english/400/250", Progress: 85,
			Subject: "English", Grade: "Grade 12", IsFavorite: true,
			Description: "English language proficiency and literature analysis for Grade 12.",
		},
		{
			ID: "c4", Title: "Grade 12 Civics & Ethics", Teacher: "Mr. Haile Gebrselassie",
			Thumbnail: "https://picsum.photos/seed/civics/400/250", Progress: 20,
			Subject: "Civics", Grade: "Grade 12",
			Description: "Understanding the Ethiopian constitution, rights, and responsibilities.",
		},
		{
			ID: "c5", Title: "Amharic Language", Teacher: "Ato Belayneh Abate",
			Thumbnail: "https://picsum.photos/seed/amharic/400/250", Progress: 50,
			Subject: "Amharic", Grade: "Grade 12", IsFavorite: true,
			Description: "Advanced Amharic grammar and literature.",
		},
		{
			ID: "c6", Title: "Grade 8 General Science", Teacher: "W/ro Mulu Solomon",
			Thumbnail: "https://picsum.photos/seed/science8/400/250",
			Subject:   "Science", Grade: "Grade 8",
			Description: "Foundational science concepts for middle school students preparing for regional exams.",
		},
		{
			ID: "c7", Title: "Grade 5 Environmental Science", Teacher: "Ato Kebede Michael",
			Thumbnail: "https://picsum.photos/seed/env5/400/250",
			Subject:   "Environmental Science", Grade: "Grade 5",
			Description: "Learning about the local environment and ecosystems in Ethiopia.",
		},
	}
	for i := range courses {
		course := courses[i]
		if course.Units == nil {
			course.Units = []catalog.Unit{}
		}
		db.catalog.courses[course.ID] = &course
	}

	materials := []catalog.Material{
		{ID: "m1", Title: "Grade 12 Physics Textbook (MoE)", Type: catalog.MaterialPDF, Subject: "Physics", Chapter: "Chapter 1: Electromagnetism", Date: "2024-03-15", IsBookmarked: true, Language: core.LanguageEnglish},
		{ID: "m2", Title: "Grade 12 Math National Exam 2015", Type: catalog.MaterialPDF, Subject: "Mathematics", Chapter: "Past Exams", Date: "2024-03-10", Language: core.LanguageEnglish},
		{ID: "m3", Title: "Civics & Ethics Summary Notes", Type: catalog.MaterialNote, Subject: "Civics", Chapter: "Constitution", Date: "2024-03-18", IsBookmarked: true, Language: core.LanguageAmharic},
		{ID: "m4", Title: "English Grammar Video Lesson", Type: catalog.MaterialVideo, Subject: "English", Chapter: "Tenses", Date: "2024-03-12", Language: core.LanguageEnglish},
	}
	for i := range materials {
		material := materials[i]
		db.catalog.materials[material.ID] = &material
	}

	score := 90
	quizzes := []catalog.Quiz{
		{ID: "q1", Title: "Grade 12 Physics: Unit 1 Test", Subject: "Physics", QuestionsCount: 15, DurationMinutes: 20, Difficulty: catalog.DifficultyEasy, Completed: true, Score: &score, Type: catalog.QuizChapter},
		{ID: "q2", Title: "Grade 12 Math: Calculus Quiz", Subject: "Mathematics", QuestionsCount: 20, DurationMinutes: 30, Difficulty: catalog.DifficultyMedium, Type: catalog.QuizWeekly},
		{ID: "q3", Title: "Grade 12 Civics: National Exam Prep", Subject: "Civics", QuestionsCount: 50, DurationMinutes: 60, Difficulty: catalog.DifficultyHard, Type: catalog.QuizNational},
	}
	for i := range quizzes {
		quiz := quizzes[i]
		db.catalog.quizzes[quiz.ID] = &quiz
	}

	return nil
}
