package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/adreporting"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// GetAdPerformance devolve o resumo plano dos 5 anúncios mais recentes da
// conta ativa, ordenado do mais novo para o mais antigo.
func GetAdPerformance(service adreporting.AdReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summaries, err := service.Summarize()

		w.Header().Set("Content-Type", "application/json")

		if errors.Is(err, adreporting.ErrNoSession) {
			json.NewEncoder(w).Encode(domain.NewEmptyDataSet())
			return
		}

		if err != nil {
			logger.WithError(err).Error("ads: failed to summarize ads")
			json.NewEncoder(w).Encode(domain.ErrorEnvelope{Error: err.Error()})
			return
		}

		if err := json.NewEncoder(w).Encode(domain.AdSummaryResponse{Data: summaries}); err != nil {
			logger.WithError(err).Error("ads: failed to encode response")
		}
	})
}
