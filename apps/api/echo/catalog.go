package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ethiopulse/backend/core/catalog"
)

type catalogApi struct {
	svc      catalog.Service
	validate *validator.Validate
}

func registerCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc catalog.Service, validate *validator.Validate) {
	api := catalogApi{
		svc:      svc,
		validate: validate,
	}

	cg := g.Group("/courses", jwt)
	cg.GET("", api.queryCourses)
	cg.GET("/:id", api.getCourse)
	cg.POST("/:id/favorite", api.toggleCourseFavorite)

	mg := g.Group("/materials", jwt)
	mg.GET("", api.queryMaterials)
	mg.POST("/:id/bookmark", api.toggleMaterialBookmark)

	qg := g.Group("/quizzes", jwt)
	qg.GET("", api.queryQuizzes)
	qg.GET("/:id", api.getQuiz)
	qg.POST("/:id/complete", api.completeQuiz)
}

// Handlers

func (api *catalogApi) queryCourses(ctx echo.Context) error {
	filter := new(catalog.CourseFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Course{})
	}

	courses, err := api.svc.QueryCourses(*filter)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *catalogApi) getCourse(ctx echo.Context) error {
	course, err := api.svc.GetCourse(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.CourseNotFoundErr {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *catalogApi) toggleCourseFavorite(ctx echo.Context) error {
	course, err := api.svc.ToggleCourseFavorite(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.CourseNotFoundErr {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling course favorite")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *catalogApi) queryMaterials(ctx echo.Context) error {
	filter := new(catalog.MaterialFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Material{})
	}

	materials, err := api.svc.QueryMaterials(*filter)
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	if materials == nil {
		materials = []catalog.Material{}
	}
	return ctx.JSON(http.StatusOK, materials)
}

func (api *catalogApi) toggleMaterialBookmark(ctx echo.Context) error {
	material, err := api.svc.ToggleMaterialBookmark(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.MaterialNotFoundErr {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling material bookmark")
	}
	return ctx.JSON(http.StatusOK, material)
}

func (api *catalogApi) queryQuizzes(ctx echo.Context) error {
	quizzes, err := api.svc.QueryQuizzes()
	if err != nil {
		return errors.Wrap(err, "querying quizzes")
	}
	if quizzes == nil {
		quizzes = []catalog.Quiz{}
	}
	return ctx.JSON(http.StatusOK, quizzes)
}

func (api *catalogApi) getQuiz(ctx echo.Context) error {
	quiz, err := api.svc.GetQuiz(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.QuizNotFoundErr {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting quiz")
	}
	return ctx.JSON(http.StatusOK, quiz)
}

func (api *catalogApi) completeQuiz(ctx echo.Context) error {
	var result catalog.QuizResult
	if err := ctx.Bind(&result); err != nil {
		return errors.Wrap(err, "binding to QuizResult")
	}
	if err := result.Validate(api.validate); err != nil {
		return err
	}

	quiz, err := api.svc.CompleteQuiz(ctx.Param("id"), result)
	if err != nil {
		if errors.Cause(err) == catalog.QuizNotFoundErr {
			return errHttpNotFound
		}
		return errors.Wrap(err, "completing quiz")
	}
	return ctx.JSON(http.StatusOK, quiz)
}
