package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/selecting"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// ListPages repassa a listagem de páginas da Graph API. Sem token salvo a
// resposta é `{"data": []}` sem chamada externa; falha da Graph API vira um
// campo `error` em resposta 200, contrato inspecionado pelo front-end.
func ListPages(service selecting.Selector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		raw, err := service.ListPages()

		w.Header().Set("Content-Type", "application/json")

		if errors.Is(err, selecting.ErrNoSessionToken) {
			json.NewEncoder(w).Encode(domain.NewEmptyDataSet())
			return
		}

		if err != nil {
			logger.WithError(err).Error("pages: failed to list pages")
			json.NewEncoder(w).Encode(domain.ErrorEnvelope{Error: err.Error()})
			return
		}

		if _, err := w.Write(raw); err != nil {
			logger.WithError(err).Error("pages: failed to write response")
		}
	})
}
