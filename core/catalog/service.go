package catalog

import (
	"github.com/pkg/errors"
)

var (
	// errors
	CourseNotFoundErr   = errors.New("course not found")
	MaterialNotFoundErr = errors.New("material not found")
	QuizNotFoundErr     = errors.New("quiz not found")
)

type (
	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		// FilterCourses applies AND operation on available CourseFilter fields.
		// CourseFilter.Search does a case-insensitive match on one of
		// Course.Title, Course.Teacher or Course.Subject.
		FilterCourses(filter CourseFilter) ([]Course, error)
		UpdateCourse(course Course) (Course, error)

		QueryAllMaterials() ([]Material, error)
		GetMaterialByID(id string) (Material, error)
		FilterMaterials(filter MaterialFilter) ([]Material, error)
		UpdateMaterial(material Material) (Material, error)

		QueryAllQuizzes() ([]Quiz, error)
		GetQuizByID(id string) (Quiz, error)
		UpdateQuiz(quiz Quiz) (Quiz, error)
	}

	Service interface {
		QueryCourses(filter CourseFilter) ([]Course, error)
		GetCourse(id string) (Course, error)
		ToggleCourseFavorite(id string) (Course, error)

		QueryMaterials(filter MaterialFilter) ([]Material, error)
		GetMaterial(id string) (Material, error)
		ToggleMaterialBookmark(id string) (Material, error)

		QueryQuizzes() ([]Quiz, error)
		GetQuiz(id string) (Quiz, error)
		CompleteQuiz(id string, result QuizResult) (Quiz, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) QueryCourses(filter CourseFilter) ([]Course, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllCourses()
	}
	return svc.repo.FilterCourses(filter)
}

func (svc *service) GetCourse(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *service) ToggleCourseFavorite(id string) (Course, error) {
	course, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}
	course.IsFavorite = !course.IsFavorite
	return svc.repo.UpdateCourse(course)
}

func (svc *service) QueryMaterials(filter MaterialFilter) ([]Material, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllMaterials()
	}
	return svc.repo.FilterMaterials(filter)
}

func (svc *service) GetMaterial(id string) (Material, error) {
	return svc.repo.GetMaterialByID(id)
}

func (svc *service) ToggleMaterialBookmark(id string) (Material, error) {
	material, err := svc.repo.GetMaterialByID(id)
	if err != nil {
		return Material{}, err
	}
	material.IsBookmarked = !material.IsBookmarked
	return svc.repo.UpdateMaterial(material)
}

func (svc *service) QueryQuizzes() ([]Quiz, error) {
	return svc.repo.QueryAllQuizzes()
}

func (svc *service) GetQuiz(id string) (Quiz, error) {
	return svc.repo.GetQuizByID(id)
}

func (svc *service) CompleteQuiz(id string, result QuizResult) (Quiz, error) {
	quiz, err := svc.repo.GetQuizByID(id)
	if err != nil {
		return Quiz{}, err
	}
	quiz.Completed = true
	score := result.Score
	quiz.Score = &score
	return svc.repo.UpdateQuiz(quiz)
}
