package adreporting

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/session"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// adSummaryLimit limita o resumo aos 5 anúncios mais recentes. O limite já é
// pedido na chamada à Graph API e reafirmado após a ordenação.
const adSummaryLimit = 5

type AdReporter interface {
	Summarize() ([]domain.AdSummary, error)
}

type Service struct {
	session *session.Store
	client  metaclient.Client
}

func NewService(sessionStore *session.Store, client metaclient.Client) AdReporter {
	return &Service{
		session: sessionStore,
		client:  client,
	}
}

// Summarize busca os anúncios recentes da conta ativa em uma única chamada
// enriquecida, achata cada anúncio e ordena do mais novo para o mais antigo
// pelo created_time.
func (s *Service) Summarize() ([]domain.AdSummary, error) {
	token := s.session.Token()
	accountID := s.session.AdAccountID()

	if token == "" || accountID == "" {
		return nil, ErrNoSession
	}

	resp, err := s.client.GetAdsByAccountID(accountID, token, adSummaryLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": accountID,
			"error":         err.Error(),
		}).Error("ads: failed to fetch recent ads from Graph API")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	summaries := make([]domain.AdSummary, 0, len(resp.Data))
	for _, ad := range resp.Data {
		summaries = append(summaries, FactoryAdSummary(ad))
	}

	// created_time ilegível ordena como zero e cai para o fim da lista
	sort.SliceStable(summaries, func(i, j int) bool {
		return utils.ParseGraphTime(summaries[i].CreatedTime).After(utils.ParseGraphTime(summaries[j].CreatedTime))
	})

	if len(summaries) > adSummaryLimit {
		summaries = summaries[:adSummaryLimit]
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": accountID,
		"ads_count":     len(summaries),
	}).Debug("ads: summarized recent ads")

	return summaries, nil
}
