package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

// dashboardApi operates on the lesson.Store of the caller's session.
type dashboardApi struct {
	conf     *core.Config
	mailSvc  core.EmailService
	validate *validator.Validate
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := dashboardApi{
		conf:     deps.Conf,
		mailSvc:  deps.MailSvc,
		validate: deps.Validate,
	}

	dg := g.Group("/dashboard", jwt, sessionMiddleware(deps.Sessions))
	dg.GET("", api.dashboard)
	dg.POST("/refresh", api.refresh)
	dg.GET("/state", api.state)
	dg.GET("/lessons", api.lessons)
	dg.GET("/months", api.months)
	dg.POST("/lessons/:id/take", api.take)
	dg.GET("/filters", api.filters)
	dg.PUT("/filters", api.setFilters)
	dg.DELETE("/filters", api.clearFilters)
	dg.GET("/calendar.ics", api.calendar)
}

type FiltersResponse struct {
	Filters         lesson.FilterRequest `json:"filters"`
	Active          bool                 `json:"active"`
	FilteredLessons []lesson.Lesson      `json:"filtered_lessons"`
}

func newFiltersResponse(store *lesson.Store) FiltersResponse {
	return FiltersResponse{
		Filters:         lesson.NewFilterRequest(store.Criteria()),
		Active:          store.HasActiveFilters(),
		FilteredLessons: store.FilteredLessons(),
	}
}

// Handlers

func (api *dashboardApi) dashboard(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, store.Dashboard())
}

func (api *dashboardApi) refresh(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	if err = store.FetchLessons(ctx.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, store.FetchError()).SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, store.Dashboard())
}

func (api *dashboardApi) state(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, store.State())
}

func (api *dashboardApi) lessons(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	var query lesson.TypeQuery
	if err = ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to TypeQuery")
	}
	if err = query.Validate(api.validate); err != nil {
		return err
	}

	if query.Type == "" {
		return ctx.JSON(http.StatusOK, store.FilteredLessons())
	}
	typ, _ := lesson.ParseType(query.Type)
	return ctx.JSON(http.StatusOK, store.LessonsByType(typ))
}

func (api *dashboardApi) months(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, store.LessonsGroupedByMonth())
}

func (api *dashboardApi) take(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	taken, err := store.TakeLesson(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	if usr := claims.User(); usr.HasEmail() && api.mailSvc != nil {
		api.mailSvc.SendMessages(lesson.NewTakenMessage(taken, usr.Address(), api.calendarOptions(usr.Name)))
	}
	return ctx.JSON(http.StatusOK, taken)
}

func (api *dashboardApi) filters(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newFiltersResponse(store))
}

func (api *dashboardApi) setFilters(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	var data lesson.FilterRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FilterRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}
	criteria, err := data.Criteria(api.conf.Scheduler.Location())
	if err != nil {
		return errors.Wrap(err, "parsing filters")
	}

	store.SetCriteria(criteria)
	return ctx.JSON(http.StatusOK, newFiltersResponse(store))
}

func (api *dashboardApi) clearFilters(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	store.ClearFilters()
	return ctx.JSON(http.StatusOK, newFiltersResponse(store))
}

func (api *dashboardApi) calendar(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	cal := lesson.Calendar(store.FilteredLessons(), api.calendarOptions(store.Tutor()), lesson.NowFunc())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="lessons.ics"`)
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}

func (api *dashboardApi) calendarOptions(tutor string) lesson.CalendarOptions {
	return lesson.CalendarOptions{
		Name:      tutor + " - " + api.conf.AppName,
		UIDDomain: api.conf.Server.Host,
	}
}
