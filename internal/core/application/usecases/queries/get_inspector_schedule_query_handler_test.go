package queries_test

import (
	"context"
	"testing"
	"time"

	"inspection/internal/core/application/usecases/queries"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetInspectorScheduleQueryHandlerTestSuite struct {
	baseQuerySuite
	handler queries.GetInspectorScheduleQueryHandler
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) SetupSuite() {
	suite.baseQuerySuite.SetupSuite()
	suite.handler = queries.NewGetInspectorScheduleQueryHandler(suite.db)
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) mustQuery(inspectorID int64) queries.GetInspectorScheduleQuery {
	id, err := kernel.NewID(inspectorID)
	suite.Require().NoError(err)
	query, err := queries.NewGetInspectorScheduleQuery(id)
	suite.Require().NoError(err)
	return query
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) TestHandle_EmptySchedule() {
	suite.seedInspector(3, "Ana", kernel.TimezoneMadrid)

	schedule, err := suite.handler.Handle(context.Background(), suite.mustQuery(3))

	suite.Require().NoError(err)
	suite.Equal(int64(3), schedule.InspectorID)
	suite.Equal(kernel.TimezoneMadrid, schedule.Timezone)
	suite.Empty(schedule.Assignments)
	suite.NotNil(schedule.Assignments)
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) TestHandle_OrderedByScheduledAt() {
	suite.seedInspector(3, "Ana", kernel.TimezoneMadrid)
	suite.seedJob(1, "Boiler inspection", "ASSIGNED", time.Now().UTC())
	suite.seedJob(2, "Roof inspection", "ASSIGNED", time.Now().UTC())

	later := time.Date(2025, 7, 10, 14, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 7, 10, 6, 0, 0, 0, time.UTC)
	suite.seedAssignment(77, 1, 3, later, nil, nil)
	suite.seedAssignment(78, 2, 3, earlier, nil, nil)

	schedule, err := suite.handler.Handle(context.Background(), suite.mustQuery(3))

	suite.Require().NoError(err)
	suite.Require().Len(schedule.Assignments, 2)
	suite.Equal(int64(78), schedule.Assignments[0].ID)
	suite.Equal("Roof inspection", schedule.Assignments[0].JobTitle)
	// Madrid is on summer time in July.
	suite.Equal("2025-07-10T08:00:00+02:00", schedule.Assignments[0].ScheduledAt)
	suite.Equal(int64(77), schedule.Assignments[1].ID)
	suite.Equal("2025-07-10T16:00:00+02:00", schedule.Assignments[1].ScheduledAt)
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) TestHandle_LondonWinterRendersPlusZeroZero() {
	suite.seedInspector(5, "Grace", kernel.TimezoneLondon)
	suite.seedJob(1, "Boiler inspection", "ASSIGNED", time.Now().UTC())
	suite.seedAssignment(77, 1, 5, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), nil, nil)

	schedule, err := suite.handler.Handle(context.Background(), suite.mustQuery(5))

	suite.Require().NoError(err)
	suite.Require().Len(schedule.Assignments, 1)
	suite.Equal("2025-01-15T12:00:00+00:00", schedule.Assignments[0].ScheduledAt)
	suite.NotContains(schedule.Assignments[0].ScheduledAt, "Z")
}

func (suite *GetInspectorScheduleQueryHandlerTestSuite) TestHandle_InspectorNotFound() {
	_, err := suite.handler.Handle(context.Background(), suite.mustQuery(424242))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetInspectorScheduleQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetInspectorScheduleQueryHandlerTestSuite))
}
