package domain

import (
	"encoding/json"

	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

// FormLeads agrupa os leads recuperados de um formulário de lead ads.
type FormLeads struct {
	FormID   string            `json:"form_id"`
	FormName string            `json:"form_name"`
	Leads    []metadomain.Lead `json:"leads"`
}

// LeadsResponse devolve a listagem bruta de formulários junto com os grupos
// de leads acumulados por formulário.
type LeadsResponse struct {
	Forms    json.RawMessage `json:"forms"`
	AllLeads []FormLeads     `json:"allLeads"`
}
