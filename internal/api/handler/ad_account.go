package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/selecting"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// ListAdAccounts repassa a listagem de contas de anúncio da Graph API,
// simétrico a ListPages.
func ListAdAccounts(service selecting.Selector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		raw, err := service.ListAdAccounts()

		w.Header().Set("Content-Type", "application/json")

		if errors.Is(err, selecting.ErrNoSessionToken) {
			json.NewEncoder(w).Encode(domain.NewEmptyDataSet())
			return
		}

		if err != nil {
			logger.WithError(err).Error("adaccounts: failed to list ad accounts")
			json.NewEncoder(w).Encode(domain.ErrorEnvelope{Error: err.Error()})
			return
		}

		if _, err := w.Write(raw); err != nil {
			logger.WithError(err).Error("adaccounts: failed to write response")
		}
	})
}
