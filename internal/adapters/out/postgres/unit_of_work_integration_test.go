package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inspection/internal/adapters/out/postgres"
	"inspection/internal/adapters/out/postgres/assignmentrepo"
	"inspection/internal/adapters/out/postgres/inspectorrepo"
	"inspection/internal/adapters/out/postgres/jobrepo"
	"inspection/internal/core/domain/model/assignment"
	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM unit of work against a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&jobrepo.JobDTO{},
		&inspectorrepo.InspectorDTO{},
		&assignmentrepo.AssignmentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs, inspectors, assignments RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newJob() *job.Job {
	j, err := job.NewJob("Boiler inspection", nil)
	suite.Require().NoError(err)
	return j
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testJob := suite.newJob()
	suite.Require().NoError(uow.JobRepository().Add(ctx, testJob))

	inspectorID, err := kernel.NewID(3)
	suite.Require().NoError(err)
	testAssignment, err := assignment.NewAssignment(testJob.ID(), inspectorID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AssignmentRepository().Add(ctx, testAssignment))

	suite.Require().NoError(testJob.Assign(testAssignment.ID()))
	suite.Require().NoError(uow.JobRepository().Update(ctx, testJob))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Assigned, loaded.Status())
	suite.Require().NotNil(loaded.AssignmentID())
	suite.Equal(testAssignment.ID().Value(), loaded.AssignmentID().Value())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testJob := suite.newJob()
	suite.Require().NoError(uow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().JobRepository().Get(ctx, testJob.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWritesInvisibleBeforeCommit() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testJob := suite.newJob()
	suite.Require().NoError(uow.JobRepository().Add(ctx, testJob))

	// A reader outside the transaction must not see the uncommitted job.
	_, err := suite.factory.Create().JobRepository().Get(ctx, testJob.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssigns_OneWins() {
	ctx := context.Background()

	testJob := suite.newJob()
	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(setup.Commit(ctx))

	firstInspector, err := kernel.NewID(3)
	suite.Require().NoError(err)
	secondInspector, err := kernel.NewID(4)
	suite.Require().NoError(err)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	firstAssignment, err := assignment.NewAssignment(testJob.ID(), firstInspector, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(first.AssignmentRepository().Add(ctx, firstAssignment))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	secondAssignment, err := assignment.NewAssignment(testJob.ID(), secondInspector, time.Now().UTC())
	suite.Require().NoError(err)
	err = second.AssignmentRepository().Add(ctx, secondAssignment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(second.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
