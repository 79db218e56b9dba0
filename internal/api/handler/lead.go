package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/leadgen"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// ListLeads devolve `{forms, allLeads}` da página ativa. Sessão incompleta
// responde `{"data": []}`; qualquer falha na sequência vira um campo `error`
// em resposta 200, registrada no servidor.
func ListLeads(service leadgen.LeadFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resp, err := service.ListLeads()

		w.Header().Set("Content-Type", "application/json")

		if errors.Is(err, leadgen.ErrNoSession) {
			json.NewEncoder(w).Encode(domain.NewEmptyDataSet())
			return
		}

		if err != nil {
			logger.WithError(err).Error("leads: failed to fetch leads")
			json.NewEncoder(w).Encode(domain.ErrorEnvelope{Error: err.Error()})
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("leads: failed to encode response")
		}
	})
}
