package queries_test

import (
	"context"
	"database/sql"
	"time"

	"inspection/internal/adapters/out/postgres/assignmentrepo"
	"inspection/internal/adapters/out/postgres/inspectorrepo"
	"inspection/internal/adapters/out/postgres/jobrepo"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// baseQuerySuite starts one PostgreSQL container per suite and migrates
// the write-model tables the read-model queries run against. Handler
// suites embed it and seed rows through the DTOs directly; query handlers
// are read-only, so there is no aggregate round-trip to exercise here.
type baseQuerySuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
}

func (suite *baseQuerySuite) SetupSuite() {
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
}

func (suite *baseQuerySuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs, inspectors, assignments RESTART IDENTITY").Error)
}

func (suite *baseQuerySuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *baseQuerySuite) seedJob(id int64, title, status string, createdAt time.Time) {
	suite.Require().NoError(suite.db.Create(&jobrepo.JobDTO{
		ID:        id,
		Title:     title,
		Status:    status,
		CreatedAt: createdAt,
	}).Error)
}

func (suite *baseQuerySuite) seedInspector(id int64, name, timezone string) {
	suite.Require().NoError(suite.db.Create(&inspectorrepo.InspectorDTO{
		ID:       id,
		Name:     name,
		Timezone: timezone,
	}).Error)
}

func (suite *baseQuerySuite) seedAssignment(id, jobID, inspectorID int64, scheduledAt time.Time, completedAt *time.Time, assessment *string) {
	suite.Require().NoError(suite.db.Create(&assignmentrepo.AssignmentDTO{
		ID:          id,
		JobID:       jobID,
		InspectorID: inspectorID,
		ScheduledAt: scheduledAt,
		CompletedAt: completedAt,
		Assessment:  assessment,
		CreatedAt:   time.Now().UTC(),
	}).Error)
}
