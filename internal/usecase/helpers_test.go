package usecase

import (
	"time"

	"interlab/internal/domain/cycle"
	"interlab/internal/domain/entities"
)

var (
	colaborador = entities.Principal{Registration: "1001", Name: "Ana Souza", Role: entities.RoleColaborador}
	greenBelt   = entities.Principal{Registration: "2002", Name: "Bruno Lima", Role: entities.RoleGreenBelt}
	comite      = entities.Principal{Registration: "3003", Name: "Carla Dias", Role: entities.RoleComite}
	agente      = entities.Principal{Registration: "4004", Name: "Davi Rocha", Role: entities.RoleAgenteImplantacao}
	admin       = entities.Principal{Registration: "9009", Name: "Admin", Role: entities.RoleAdmin}

	testGate = cycle.NewGate(time.UTC)
)

func at(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }
}

func storedCycle(program entities.ProgramType) entities.CycleConfig {
	cfg := cycle.OfficialCalendar(program)
	cfg.ID = entities.ActiveCycleConfigID(program)
	return cfg
}
