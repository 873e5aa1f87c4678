package inspectorrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inspection/internal/adapters/out/postgres/inspectorrepo"
	"inspection/internal/core/domain/model/inspector"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// InspectorRepositoryIntegrationTestSuite verifies inspector persistence
// behavior against a real PostgreSQL container, including the email
// uniqueness constraint.
type InspectorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inspectorrepo.GormInspectorRepository
	tracker    *MockAggregateTracker
}

func (suite *InspectorRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	// The application connects through the lib/pq driver so constraint
	// violations surface as *pq.Error; the tests do the same.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&inspectorrepo.InspectorDTO{}))
}

func (suite *InspectorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inspectors RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = inspectorrepo.NewGormInspectorRepository(suite.db, suite.tracker)
}

func (suite *InspectorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InspectorRepositoryIntegrationTestSuite) newInspector(name, timezone string, email *string) *inspector.Inspector {
	tz, err := kernel.NewTimezone(timezone)
	suite.Require().NoError(err)
	i, err := inspector.NewInspector(name, tz, email)
	suite.Require().NoError(err)
	return i
}

func (suite *InspectorRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()

	email := "ana@example.com"
	created := suite.newInspector("Ana", kernel.TimezoneMadrid, &email)
	suite.Require().NoError(suite.repository.Add(ctx, created))
	suite.True(created.ID().IsAssigned())

	loaded, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal("Ana", loaded.Name())
	suite.Equal(kernel.TimezoneMadrid, loaded.Timezone().Name())
	suite.Require().NotNil(loaded.Email())
	suite.Equal(email, *loaded.Email())
}

func (suite *InspectorRepositoryIntegrationTestSuite) TestAdd_DuplicateEmailConflict() {
	ctx := context.Background()

	email := "ana@example.com"
	first := suite.newInspector("Ana", kernel.TimezoneMadrid, &email)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.newInspector("Other Ana", kernel.TimezoneLondon, &email)
	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *InspectorRepositoryIntegrationTestSuite) TestAdd_MultipleWithoutEmail() {
	// The unique index binds only inspectors that carry an email.
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newInspector("Ana", kernel.TimezoneMadrid, nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newInspector("Luis", kernel.TimezoneMexicoCity, nil)))

	var count int64
	suite.Require().NoError(suite.db.Model(&inspectorrepo.InspectorDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *InspectorRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	id, err := kernel.NewID(424242)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, id)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestInspectorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InspectorRepositoryIntegrationTestSuite))
}
