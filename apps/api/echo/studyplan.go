package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/studyplan"
)

type studyPlanApi struct {
	service *studyplan.Service
	dates   *datefmt.Formatter
}

type statusRequest struct {
	Status studyplan.Status `json:"status" validate:"required,oneof_ci=PENDING IN_PROGRESS COMPLETED"`
}

func registerStudyPlanAPI(g *echo.Group, svc *studyplan.Service, dates *datefmt.Formatter) {
	api := studyPlanApi{service: svc, dates: dates}

	g.GET("/study-plan", api.dashboard)

	tg := g.Group("/study-plan/tasks")
	tg.POST("", api.taskCreate)
	tg.PUT("/:id", api.taskUpdate)
	tg.PATCH("/:id/status", api.taskSetStatus)
	tg.DELETE("/:id", api.taskDestroy)
}

// Handlers

func (api *studyPlanApi) dashboard(ctx echo.Context) error {
	selected, err := bindDate(ctx, api.dates)
	if err != nil {
		return err
	}

	subject := core.CleanString(ctx.QueryParam(subjectParam))
	dash, err := api.service.Dashboard(ctx.Request().Context(), contextToken(ctx), subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newDashboardView(dash, selected, subject, api.dates))
}

func (api *studyPlanApi) taskCreate(ctx echo.Context) error {
	data := new(studyplan.NewTask)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	task, err := api.service.CreateTask(ctx.Request().Context(), contextToken(ctx), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newTaskView(task, api.dates, datefmt.Full))
}

func (api *studyPlanApi) taskUpdate(ctx echo.Context) error {
	data := new(studyplan.UpdateTask)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	task, err := api.service.UpdateTask(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id")), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newTaskView(task, api.dates, datefmt.Full))
}

func (api *studyPlanApi) taskSetStatus(ctx echo.Context) error {
	data := new(statusRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}
	task, err := api.service.SetStatus(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id")), data.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newTaskView(task, api.dates, datefmt.Full))
}

func (api *studyPlanApi) taskDestroy(ctx echo.Context) error {
	if err := api.service.DeleteTask(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id"))); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
