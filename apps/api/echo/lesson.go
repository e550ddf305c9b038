package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/lesson"
)

// lessonApi exposes the Gateway itself. It is what lessonapi.Client talks to.
type lessonApi struct {
	gateway lesson.Gateway
}

func registerLessonAPI(g *echo.Group, jwt echo.MiddlewareFunc, gateway lesson.Gateway) {
	api := lessonApi{gateway: gateway}

	lg := g.Group("/lessons", jwt)
	lg.GET("", api.query)
	lg.POST("/:id/take", api.take)
}

func (api *lessonApi) query(ctx echo.Context) error {
	lessons, err := api.gateway.GetLessons(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting lessons")
	}
	return ctx.JSON(http.StatusOK, lesson.ReclassifyAll(lessons, lesson.NowFunc()))
}

func (api *lessonApi) take(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	taken, err := api.gateway.TakeLesson(ctx.Request().Context(), ctx.Param("id"), claims.Name)
	if err != nil {
		return errors.Wrap(err, "taking lesson")
	}
	return ctx.JSON(http.StatusOK, taken)
}
