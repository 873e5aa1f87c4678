// Package http implements the inbound HTTP adapter. It translates echo
// requests into commands and queries, and domain errors into the
// {code, message} error body with the right status code.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"inspection/internal/core/application/usecases/commands"
	"inspection/internal/core/application/usecases/queries"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createJobHandler            commands.CreateJobCommandHandler
	createInspectorHandler      commands.CreateInspectorCommandHandler
	assignJobHandler            commands.AssignJobCommandHandler
	completeAssignmentHandler   commands.CompleteAssignmentCommandHandler
	getJobsHandler              queries.GetJobsQueryHandler
	getJobDetailHandler         queries.GetJobDetailQueryHandler
	getInspectorScheduleHandler queries.GetInspectorScheduleQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	createInspectorHandler commands.CreateInspectorCommandHandler,
	assignJobHandler commands.AssignJobCommandHandler,
	completeAssignmentHandler commands.CompleteAssignmentCommandHandler,
	getJobsHandler queries.GetJobsQueryHandler,
	getJobDetailHandler queries.GetJobDetailQueryHandler,
	getInspectorScheduleHandler queries.GetInspectorScheduleQueryHandler,
) *Server {
	return &Server{
		createJobHandler:            createJobHandler,
		createInspectorHandler:      createInspectorHandler,
		assignJobHandler:            assignJobHandler,
		completeAssignmentHandler:   completeAssignmentHandler,
		getJobsHandler:              getJobsHandler,
		getJobDetailHandler:         getJobDetailHandler,
		getInspectorScheduleHandler: getInspectorScheduleHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/jobs", s.GetJobs)
	e.POST("/jobs", s.CreateJob)
	e.GET("/jobs/:id", s.GetJob)
	e.POST("/jobs/:id/assign", s.AssignJob)
	e.POST("/jobs/:id/complete", s.CompleteJob)
	e.POST("/assignments/:id/complete", s.CompleteAssignment)
	e.GET("/inspectors/:id/schedule", s.GetInspectorSchedule)
	e.POST("/inspectors", s.CreateInspector)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetJobs handles GET /jobs - lists jobs, optionally filtered by status.
func (s *Server) GetJobs(ctx echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	query, err := queries.NewGetJobsQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.getJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := JobList{Items: make([]Job, 0, len(jobs))}
	for _, j := range jobs {
		response.Items = append(response.Items, jobFromQuery(j))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateJob handles POST /jobs - registers a new inspection job.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body CreateJobRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateJobCommand(body.Title, body.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, jobFromView(view))
}

// GetJob handles GET /jobs/:id - returns one job with its assignment.
func (s *Server) GetJob(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobDetailQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getJobDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobDetailFromQuery(detail))
}

// AssignJob handles POST /jobs/:id/assign - assigns the job to an inspector.
func (s *Server) AssignJob(ctx echo.Context) error {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body AssignJobRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	inspectorID, err := kernel.NewID(body.InspectorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignJobCommand(jobID, inspectorID, body.ScheduleAt)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.assignJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResultFromView(view))
}

// CompleteJob handles POST /jobs/:id/complete - completes the job's
// assignment, addressed through the job.
func (s *Server) CompleteJob(ctx echo.Context) error {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body CompleteRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	inspectorID, err := kernel.NewID(body.InspectorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteAssignmentCommandByJob(jobID, inspectorID, body.CompletedAt, body.Assessment)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.completeAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResultFromView(view))
}

// CompleteAssignment handles POST /assignments/:id/complete - completes
// the assignment addressed by its own identifier.
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	assignmentID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body CompleteRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	inspectorID, err := kernel.NewID(body.InspectorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteAssignmentCommand(assignmentID, inspectorID, body.CompletedAt, body.Assessment)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.completeAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResultFromView(view))
}

// GetInspectorSchedule handles GET /inspectors/:id/schedule.
func (s *Server) GetInspectorSchedule(ctx echo.Context) error {
	inspectorID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetInspectorScheduleQuery(inspectorID)
	if err != nil {
		return respondError(ctx, err)
	}

	schedule, err := s.getInspectorScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheduleFromQuery(schedule))
}

// CreateInspector handles POST /inspectors - registers a new inspector.
func (s *Server) CreateInspector(ctx echo.Context) error {
	var body CreateInspectorRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateInspectorCommand(body.Name, body.Timezone, body.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.createInspectorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Inspector{
		ID:       view.ID,
		Name:     view.Name,
		Timezone: view.Timezone,
		Email:    view.Email,
	})
}

// pathID parses a positive integer path parameter into a kernel.ID.
func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}

// respondError maps domain errors onto HTTP status codes. Unclassified
// errors become 500 without leaking storage detail to the client.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
