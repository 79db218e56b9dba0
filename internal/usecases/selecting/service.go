package selecting

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/session"
)

// Selector lista páginas e contas de anúncio da identidade do token e aplica
// a política de seleção "selectFirst": o primeiro item retornado passa a ser
// o recurso ativo da sessão. A listagem é repassada como veio da Graph API.
type Selector interface {
	ListPages() (json.RawMessage, error)
	ListAdAccounts() (json.RawMessage, error)
}

type Service struct {
	session *session.Store
	client  metaclient.Client
}

func NewService(sessionStore *session.Store, client metaclient.Client) Selector {
	return &Service{
		session: sessionStore,
		client:  client,
	}
}

func (s *Service) ListPages() (json.RawMessage, error) {
	token := s.session.Token()
	if token == "" {
		return nil, ErrNoSessionToken
	}

	resp, err := s.client.GetUserPages(token)
	if err != nil {
		logrus.WithError(err).Error("pages: failed to list pages from Graph API")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	// selectFirst: o primeiro item vira a página ativa da sessão
	if len(resp.Data) > 0 {
		s.session.SetPageID(resp.Data[0].ID)

		logrus.WithFields(logrus.Fields{
			"page_id":   resp.Data[0].ID,
			"page_name": resp.Data[0].Name,
		}).Debug("pages: first page selected as active page")
	}

	return resp.Raw, nil
}

func (s *Service) ListAdAccounts() (json.RawMessage, error) {
	token := s.session.Token()
	if token == "" {
		return nil, ErrNoSessionToken
	}

	resp, err := s.client.GetUserAdAccounts(token)
	if err != nil {
		logrus.WithError(err).Error("adaccounts: failed to list ad accounts from Graph API")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	// selectFirst: a primeira conta vira a conta de anúncio ativa da sessão
	if len(resp.Data) > 0 {
		s.session.SetAdAccountID(resp.Data[0].ID)

		logrus.WithFields(logrus.Fields{
			"ad_account_id": resp.Data[0].ID,
		}).Debug("adaccounts: first account selected as active ad account")
	}

	return resp.Raw, nil
}
