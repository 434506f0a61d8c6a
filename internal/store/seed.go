package store

import (
	"time"

	"github.com/revisaai/revisaai/internal/models"
)

// SeedUsers is the mock account set. The first user is the demo login.
func SeedUsers(now time.Time) []SeedUser {
	return []SeedUser{
		{
			User:     models.User{ID: DemoUserID, Name: "Ricardo Pereira", Email: "ricardo@gmail.com", CreatedAt: now, UpdatedAt: now},
			Password: "1234",
		},
	}
}

// DemoUserID owns every seeded moto and revision.
const DemoUserID = "1"

func SeedMotos(now time.Time) []models.Moto {
	return []models.Moto{
		{ID: "1", OwnerID: DemoUserID, Name: "Relâmpago", Brand: "Yamaha MT 07", Year: 2010, Km: 30500.5, CreatedAt: now},
		{ID: "2", OwnerID: DemoUserID, Name: "Biz", Brand: "Honda 220", Year: 2016, Km: 55200, CreatedAt: now},
	}
}

func SeedRevisions(now time.Time) []models.Revision {
	iso := now.UTC().Format(time.RFC3339)
	return []models.Revision{
		{
			ID: "1", OwnerID: DemoUserID, MotoID: "1",
			Title: "Troca de Óleo", Service: "Óleo do motor",
			Details: "Moto está com problema de carburador...",
			Date:    iso, Time: iso, Km: 30500, Status: models.StatusPending, CreatedAt: now,
		},
		{
			ID: "2", OwnerID: DemoUserID, MotoID: "1",
			Title: "Revisão Geral", Service: "Motor, faróis e freio",
			Details: "Revisão geral para venda da moto.",
			Date:    iso, Time: iso, Km: 30500, Status: models.StatusPending, CreatedAt: now,
		},
		{
			ID: "3", OwnerID: DemoUserID, MotoID: "1",
			Title: "Troca de Kit", Service: "Corrente, coroa e pinhão",
			Details: "Folga excessiva na corrente e dentes da coroa/pinhão irregulares.",
			Date:    iso, Time: iso, Km: 15650, Status: models.StatusDone,
			AutoReminderEnabled: true, AutoReminderInterval: "Três meses", CreatedAt: now,
		},
	}
}

func SeedWorkshops() []models.Workshop {
	return []models.Workshop{
		{ID: "1", Name: "Oficina Exemplo", Address: "Rua da Manutenção, 123", Neighborhood: "Centro", Services: []string{"revisão geral", "troca de óleo"}},
		{ID: "2", Name: "Moto Peças Vila Nova", Address: "Av. das Palmeiras, 850", Neighborhood: "Vila Nova", Services: []string{"freios", "kit relação", "pneus"}},
		{ID: "3", Name: "Garagem Duas Rodas", Address: "Rua Sete de Setembro, 45", Neighborhood: "Jardim América", Services: []string{"elétrica", "injeção eletrônica", "troca de óleo"}},
	}
}
