package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/modeltest"
)

type modelTestApi struct {
	service *modeltest.Service
	dates   *datefmt.Formatter
}

func registerModelTestAPI(g *echo.Group, svc *modeltest.Service, dates *datefmt.Formatter) {
	api := modelTestApi{service: svc, dates: dates}

	g.GET("/tests", api.testQuery)
	g.GET("/tests/:id", api.testStart)
	g.POST("/tests/:id/attempts", api.attemptCreate)
	g.GET("/attempts/:id", api.attemptResults)
}

// Handlers

func (api *modelTestApi) testQuery(ctx echo.Context) error {
	filter := bindTestFilter(ctx)
	tests, err := api.service.List(ctx.Request().Context(), contextToken(ctx), filter, bindOrderings(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newTestListView(tests, filter.Subjects))
}

func (api *modelTestApi) testStart(ctx echo.Context) error {
	sess, err := api.service.Start(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newSessionView(sess))
}

func (api *modelTestApi) attemptCreate(ctx echo.Context) error {
	data := new(modeltest.NewAttempt)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	id, err := api.service.Submit(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id")), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"attemptId": id})
}

func (api *modelTestApi) attemptResults(ctx echo.Context) error {
	res, err := api.service.Results(ctx.Request().Context(), contextToken(ctx), core.ID(ctx.Param("id")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newResultsView(res, api.dates))
}
