// Command seed populates a development database with a few inspectors
// and a batch of open inspection jobs. It goes through the regular
// command handlers so seeded data passes the same validation as API input.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"inspection/cmd"
	"inspection/internal/adapters/out/postgres/assignmentrepo"
	"inspection/internal/adapters/out/postgres/inspectorrepo"
	"inspection/internal/adapters/out/postgres/jobrepo"
	"inspection/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type seedInspector struct {
	name     string
	timezone string
	email    string
}

type seedJob struct {
	title       string
	description string
}

var inspectors = []seedInspector{
	{name: "Ana Torres", timezone: "Europe/Madrid", email: "ana.torres@example.com"},
	{name: "Luis Hernandez", timezone: "America/Mexico_City", email: "luis.hernandez@example.com"},
	{name: "Emma Clarke", timezone: "Europe/London", email: "emma.clarke@example.com"},
}

var seedJobs = []seedJob{
	{title: "Warehouse fire safety check", description: "Annual fire safety inspection of the central warehouse"},
	{title: "Elevator certification", description: "Recurring certification of passenger elevators, building A"},
	{title: "Kitchen hygiene audit", description: "Food safety audit of the staff canteen kitchen"},
	{title: "Roof drainage survey", description: "Inspect roof drains and gutters before the rainy season"},
	{title: "Electrical panel review", description: "Check main distribution panels for wear and labeling"},
	{title: "Emergency lighting test", description: "Verify emergency lighting across all exit routes"},
	{title: "Boiler room inspection", description: "Pressure vessel and boiler room compliance check"},
	{title: "Loading dock assessment", description: "Structural assessment of loading dock ramps"},
	{title: "HVAC filter audit", description: "Confirm filter replacement schedule is being followed"},
	{title: "Sprinkler system check", description: "Functional test of the sprinkler system risers"},
}

func main() {
	configs := getConfigs()
	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	ctx := context.Background()

	createInspector := app.CreateCreateInspectorCommandHandler()
	for _, seed := range inspectors {
		email := seed.email
		command, err := commands.NewCreateInspectorCommand(seed.name, seed.timezone, &email)
		if err != nil {
			log.Fatalf("Invalid inspector seed %q: %v", seed.name, err)
		}

		view, err := createInspector.Handle(ctx, command)
		if err != nil {
			log.Fatalf("Failed to seed inspector %q: %v", seed.name, err)
		}
		fmt.Printf("inspector %d: %s (%s)\n", view.ID, view.Name, view.Timezone)
	}

	createJob := app.CreateCreateJobCommandHandler()
	for _, seed := range seedJobs {
		description := seed.description
		command, err := commands.NewCreateJobCommand(seed.title, &description)
		if err != nil {
			log.Fatalf("Invalid job seed %q: %v", seed.title, err)
		}

		view, err := createJob.Handle(ctx, command)
		if err != nil {
			log.Fatalf("Failed to seed job %q: %v", seed.title, err)
		}
		fmt.Printf("job %d: %s [%s]\n", view.ID, view.Title, view.Status)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&jobrepo.JobDTO{}, &inspectorrepo.InspectorDTO{}, &assignmentrepo.AssignmentDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}
