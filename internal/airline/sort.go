package airline

import (
	"sort"

	"github.com/Domenick1991/airinventory/internal/domain"
)

func sortClients(clients []*domain.Client) {
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID() < clients[j].ID() })
}

func sortClientInfos(infos []domain.ClientInfo) {
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
}
