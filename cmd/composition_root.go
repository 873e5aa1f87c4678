package cmd

import (
	"inspection/internal/adapters/out/postgres"
	"inspection/internal/core/application/usecases/commands"
	"inspection/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInspectorCommandHandler() commands.CreateInspectorCommandHandler {
	var f commands.InspectorUoWFactory = FuncInspectorUoWFactory(func() commands.InspectorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInspectorCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignJobCommandHandler() commands.AssignJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAssignmentCommandHandler(f, c.configs.RequireAssessment)
}

func (c *CompositionRoot) CreateGetJobsQueryHandler() queries.GetJobsQueryHandler {
	return queries.NewGetJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobDetailQueryHandler() queries.GetJobDetailQueryHandler {
	return queries.NewGetJobDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInspectorScheduleQueryHandler() queries.GetInspectorScheduleQueryHandler {
	return queries.NewGetInspectorScheduleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduleDigestQueryHandler() queries.GetScheduleDigestQueryHandler {
	return queries.NewGetScheduleDigestQueryHandler(c.gormDB)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncInspectorUoWFactory func() commands.InspectorUoW

func (f FuncInspectorUoWFactory) Create() commands.InspectorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
