package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/user"
	testutil "github.com/ethiopulse/backend/tests"
)

func Test_catalogApi_courseQuery(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	allCourses, err := catRepo.QueryAllCourses()
	if err != nil {
		t.Fatalf("QueryAllCourses(): %v", err)
	}
	physics, err := catRepo.GetCourseByID("c1")
	if err != nil {
		t.Fatalf("GetCourseByID(): %v", err)
	}
	grade8, err := catRepo.GetCourseByID("c6")
	if err != nil {
		t.Fatalf("GetCourseByID(): %v", err)
	}
	favorites, err := catRepo.FilterCourses(catalog.CourseFilter{FavoritesOnly: true})
	if err != nil {
		t.Fatalf("FilterCourses(): %v", err)
	}

	path := func(search, subject, grade string, favorites bool) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if subject != "" {
			v.Add("subject", subject)
		}
		if grade != "" {
			v.Add("grade", grade)
		}
		if favorites {
			v.Add("favorites", "true")
		}
		return "/api/courses?" + v.Encode()
	}
	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		{name: "Auth required", path: "/api/courses", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Get all", path: "/api/courses", token: token, wantData: marchallObj(t, allCourses)},
		{name: "search (unknown)", path: path("astronomy", "", "", false), token: token, wantData: empty},
		{name: "search=physics", path: path("physics", "", "", false), token: token, wantData: marchallList(t, physics)},
		{name: "search by teacher", path: path("kassahun", "", "", false), token: token, wantData: marchallList(t, physics)},
		{name: "subject=Physics", path: path("", "Physics", "", false), token: token, wantData: marchallList(t, physics)},
		{name: "grade=Grade 8", path: path("", "", "Grade 8", false), token: token, wantData: marchallList(t, grade8)},
		{name: "favorites only", path: path("", "", "", true), token: token, wantData: marchallObj(t, favorites)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_catalogApi_courseGet(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	physics, err := catRepo.GetCourseByID("c1")
	if err != nil {
		t.Fatalf("GetCourseByID(): %v", err)
	}

	tests := []httpTest{
		{name: "Course found", path: "/api/courses/c1", wantCode: http.StatusOK, wantData: marchallObj(t, physics)},
		{name: "Course not found", path: "/api/courses/nope", wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.token = token

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_catalogApi_courseToggleFavorite(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	toggle := func(t *testing.T, want bool) {
		req, rec := newAuthRequest(http.MethodPost, "/api/courses/c2/favorite", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var course catalog.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &course); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if course.IsFavorite != want {
			t.Errorf("failed! IsFavorite = %v; want %v", course.IsFavorite, want)
		}
	}

	t.Run("Favorite set", func(t *testing.T) { toggle(t, true) })
	t.Run("Favorite unset", func(t *testing.T) { toggle(t, false) })
	t.Run("Course not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/courses/nope/favorite", token)
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		checkCodeAndData(t, tt, rec)
	})
}

func Test_catalogApi_materialQuery(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	allMaterials, err := catRepo.QueryAllMaterials()
	if err != nil {
		t.Fatalf("QueryAllMaterials(): %v", err)
	}
	pdfs, err := catRepo.FilterMaterials(catalog.MaterialFilter{Type: catalog.MaterialPDF})
	if err != nil {
		t.Fatalf("FilterMaterials(): %v", err)
	}
	bookmarked, err := catRepo.FilterMaterials(catalog.MaterialFilter{BookmarkedOnly: true})
	if err != nil {
		t.Fatalf("FilterMaterials(): %v", err)
	}

	tests := []httpTest{
		{name: "Auth required", path: "/api/materials", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Get all", path: "/api/materials", token: token, wantData: marchallObj(t, allMaterials)},
		{name: "type=pdf", path: "/api/materials?type=pdf", token: token, wantData: marchallObj(t, pdfs)},
		{name: "bookmarked only", path: "/api/materials?bookmarked=true", token: token, wantData: marchallObj(t, bookmarked)},
		{name: "search (unknown)", path: "/api/materials?search=geology", token: token, wantData: marchallList(t, []interface{}{}...)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_catalogApi_materialToggleBookmark(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	req, rec := newAuthRequest(http.MethodPost, "/api/materials/m2/bookmark", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	var material catalog.Material
	if err := json.Unmarshal(rec.Body.Bytes(), &material); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if !material.IsBookmarked {
		t.Error("failed! material not bookmarked")
	}
}

func Test_catalogApi_quizQuery(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	allQuizzes, err := catRepo.QueryAllQuizzes()
	if err != nil {
		t.Fatalf("QueryAllQuizzes(): %v", err)
	}
	examPrep, err := catRepo.GetQuizByID("q3")
	if err != nil {
		t.Fatalf("GetQuizByID(): %v", err)
	}

	tests := []httpTest{
		{name: "Auth required", path: "/api/quizzes", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Get all", path: "/api/quizzes", token: token, wantData: marchallObj(t, allQuizzes)},
		{name: "Quiz found", path: "/api/quizzes/q3", token: token, wantData: marchallObj(t, examPrep)},
		{name: "Quiz not found", path: "/api/quizzes/nope", token: token, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_catalogApi_quizComplete(t *testing.T) {
	app := setup(t, true /* seeded */)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "hero@test.et", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	t.Run("invalid score", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/quizzes/q2/complete", token, marchallObj(t, catalog.QuizResult{Score: 150}))
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"score": "score must be 100 or less"})}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("quiz completed", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/quizzes/q2/complete", token, marchallObj(t, catalog.QuizResult{Score: 85}))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var quiz catalog.Quiz
		if err := json.Unmarshal(rec.Body.Bytes(), &quiz); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if !quiz.Completed || quiz.Score == nil || *quiz.Score != 85 {
			t.Errorf("failed! quiz not completed: %+v", quiz)
		}
	})

	t.Run("quiz not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/quizzes/nope/complete", token, marchallObj(t, catalog.QuizResult{Score: 85}))
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		checkCodeAndData(t, tt, rec)
	})
}
