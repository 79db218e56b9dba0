package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/session"
	"github.com/vfg2006/campaign-manager-api/pkg/log"
)

// SaveToken recebe o token de acesso vindo do redirect OAuth e grava na
// sessão. Qualquer valor é aceito, inclusive vazio; a resposta é sempre o
// mesmo texto de confirmação.
func SaveToken(store *session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := r.URL.Query().Get("token")
		store.SaveToken(token)

		// O valor do token não vai para o log
		logger.WithField("token_present", token != "").Info("session: access token saved")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Token received")); err != nil {
			logger.WithError(err).Warn("session: error writing acknowledgement")
		}
	})
}
