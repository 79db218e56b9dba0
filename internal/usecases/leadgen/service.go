package leadgen

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/session"
)

// LeadFetcher recupera os leads da página ativa agrupados por formulário de
// lead ads.
type LeadFetcher interface {
	ListLeads() (*domain.LeadsResponse, error)
}

type Service struct {
	session *session.Store
	client  metaclient.Client
}

func NewService(sessionStore *session.Store, client metaclient.Client) LeadFetcher {
	return &Service{
		session: sessionStore,
		client:  client,
	}
}

// ListLeads resolve o token da página, lista os formulários e busca os leads
// de cada formulário um a um, em sequência. Uma falha em qualquer formulário
// aborta a varredura inteira (abort-all): melhor nenhum resultado do que um
// agrupamento parcial não sinalizado.
func (s *Service) ListLeads() (*domain.LeadsResponse, error) {
	token := s.session.Token()
	pageID := s.session.PageID()

	if token == "" || pageID == "" {
		return nil, ErrNoSession
	}

	pageToken, err := s.client.GetPageAccessToken(pageID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("leads: failed to resolve page access token")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	if pageToken == "" {
		logrus.WithField("page_id", pageID).Warn("leads: Graph API response had no page access token")
		return nil, ErrNoPageToken
	}

	forms, err := s.client.GetLeadgenFormsByPageID(pageID, pageToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("leads: failed to list leadgen forms")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	allLeads := make([]domain.FormLeads, 0, len(forms.Data))
	for _, form := range forms.Data {
		leads, err := s.client.GetLeadsByFormID(form.ID, pageToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"page_id": pageID,
				"form_id": form.ID,
				"error":   err.Error(),
			}).Error("leads: failed to fetch leads for form")
			return nil, errors.Wrap(ErrMetaIntegration, err.Error())
		}

		if leads.Data == nil {
			continue
		}

		allLeads = append(allLeads, domain.FormLeads{
			FormID:   form.ID,
			FormName: form.Name,
			Leads:    leads.Data,
		})
	}

	logrus.WithFields(logrus.Fields{
		"page_id":     pageID,
		"forms_count": len(forms.Data),
	}).Debug("leads: finished sequential per-form fetch")

	return &domain.LeadsResponse{
		Forms:    forms.Raw,
		AllLeads: allLeads,
	}, nil
}
