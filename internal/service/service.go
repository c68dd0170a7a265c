package service

import (
	"github.com/AhmedSalem104/voltyks/internal/cleanup"
	"github.com/AhmedSalem104/voltyks/internal/handlers/processes"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	"github.com/AhmedSalem104/voltyks/internal/repo"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
)

type Services struct {
	ProcessService processes.Service
	Terminator     cleanup.Terminator
}

func New(txManager pg.TXManager, repo *repo.Repositories, notifier processservice.Notifier, throttle processservice.Throttle) *Services {
	processService := processservice.New(txManager, repo.Lifecycle(), notifier, throttle)

	return &Services{
		ProcessService: processService,
		Terminator:     processService,
	}
}
