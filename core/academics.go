package core

// Academic enums shared by the user profile and the catalog.

type (
	Grade    string
	Stream   string
	Language string
)

const (
	GradeKG Grade = "KG"

	StreamNaturalScience Stream = "Natural Science"
	StreamSocialScience  Stream = "Social Science"
	StreamGeneral        Stream = "General"
	StreamTVET           Stream = "TVET"

	LanguageEnglish    Language = "English"
	LanguageAmharic    Language = "Amharic"
	LanguageAfaanOromo Language = "Afaan Oromo"
	LanguageTigrinya   Language = "Tigrinya"
)

var (
	Grades = []Grade{
		GradeKG,
		"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
		"Grade 7", "Grade 8", "Grade 9", "Grade 10", "Grade 11", "Grade 12",
	}
	Streams   = []Stream{StreamNaturalScience, StreamSocialScience, StreamGeneral, StreamTVET}
	Languages = []Language{LanguageEnglish, LanguageAmharic, LanguageAfaanOromo, LanguageTigrinya}
)

func IsValidGrade(g Grade) bool {
	for _, grade := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}

func IsValidStream(s Stream) bool {
	for _, stream := range Streams {
		if s == stream {
			return true
		}
	}
	return false
}

func IsValidLanguage(l Language) bool {
	for _, lang := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
