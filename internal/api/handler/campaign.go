package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// CreateCampaign cria uma campanha pausada a partir do brief enviado no
// corpo. Sessão sem token ou sem conta selecionada responde 400; o resultado
// da Graph API é devolvido como veio, sucesso ou falha.
func CreateCampaign(service campaigning.CampaignCreator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		resp, err := service.Create(req.Brief)
		if err != nil {
			if errors.Is(err, campaigning.ErrMissingCredentials) {
				apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "No token or ad account", nil)
				return
			}

			logger.WithError(err).Error("campaigns: failed to create campaign")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao criar campanha na Graph API", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}
