package inmemdb

import (
	"sort"
	"strings"

	"github.com/ethiopulse/backend/core/catalog"
)

type catalogRepository struct {
	db *catalogTables
}

var _ catalog.Repository = (*catalogRepository)(nil)

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) queryCourses() []catalog.Course {
	courses := make([]catalog.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *catalogRepository) QueryAllCourses() ([]catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.queryCourses(), nil
}

func (repo *catalogRepository) GetCourseByID(id string) (catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if course, ok := repo.db.courses[id]; ok {
		return *course, nil
	}
	return catalog.Course{}, catalog.CourseNotFoundErr
}

func (repo *catalogRepository) FilterCourses(filter catalog.CourseFilter) ([]catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	match := func(course catalog.Course) bool {
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(course.Title), search) &&
				!strings.Contains(strings.ToLower(course.Teacher), search) &&
				!strings.Contains(strings.ToLower(course.Subject), search) {
				return false
			}
		}
		if filter.Subject != "" && !strings.EqualFold(course.Subject, filter.Subject) {
			return false
		}
		if filter.Grade != "" && string(course.Grade) != filter.Grade {
			return false
		}
		if filter.FavoritesOnly && !course.IsFavorite {
			return false
		}
		return true
	}

	courses := make([]catalog.Course, 0)
	for _, course := range repo.queryCourses() {
		if match(course) {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (repo *catalogRepository) UpdateCourse(course catalog.Course) (catalog.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[course.ID]; !ok {
		return catalog.Course{}, catalog.CourseNotFoundErr
	}
	repo.db.courses[course.ID] = &course
	return course, nil
}

func (repo *catalogRepository) queryMaterials() []catalog.Material {
	materials := make([]catalog.Material, 0, len(repo.db.materials))
	for _, m := range repo.db.materials {
		materials = append(materials, *m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return materials
}

func (repo *catalogRepository) QueryAllMaterials() ([]catalog.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.queryMaterials(), nil
}

func (repo *catalogRepository) GetMaterialByID(id string) (catalog.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if material, ok := repo.db.materials[id]; ok {
		return *material, nil
	}
	return catalog.Material{}, catalog.MaterialNotFoundErr
}

func (repo *catalogRepository) FilterMaterials(filter catalog.MaterialFilter) ([]catalog.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	match := func(material catalog.Material) bool {
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(material.Title), search) &&
				!strings.Contains(strings.ToLower(material.Chapter), search) {
				return false
			}
		}
		if filter.Subject != "" && !strings.EqualFold(material.Subject, filter.Subject) {
			return false
		}
		if filter.Type != "" && material.Type != filter.Type {
			return false
		}
		if filter.BookmarkedOnly && !material.IsBookmarked {
			return false
		}
		return true
	}

	materials := make([]catalog.Material, 0)
	for _, material := range repo.queryMaterials() {
		if match(material) {
			materials = append(materials, material)
		}
	}
	return materials, nil
}

func (repo *catalogRepository) UpdateMaterial(material catalog.Material) (catalog.Material, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.materials[material.ID]; !ok {
		return catalog.Material{}, catalog.MaterialNotFoundErr
	}
	repo.db.materials[material.ID] = &material
	return material, nil
}

func (repo *catalogRepository) QueryAllQuizzes() ([]catalog.Quiz, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	quizzes := make([]catalog.Quiz, 0, len(repo.db.quizzes))
	for _, q := range repo.db.quizzes {
		quizzes = append(quizzes, *q)
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].ID < quizzes[j].ID })
	return quizzes, nil
}

func (repo *catalogRepository) GetQuizByID(id string) (catalog.Quiz, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if quiz, ok := repo.db.quizzes[id]; ok {
		return *quiz, nil
	}
	return catalog.Quiz{}, catalog.QuizNotFoundErr
}

func (repo *catalogRepository) UpdateQuiz(quiz catalog.Quiz) (catalog.Quiz, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.quizzes[quiz.ID]; !ok {
		return catalog.Quiz{}, catalog.QuizNotFoundErr
	}
	repo.db.quizzes[quiz.ID] = &quiz
	return quiz, nil
}
