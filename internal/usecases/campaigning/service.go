package campaigning

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/session"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// briefMaxLen limita quantos caracteres do brief entram no nome da campanha.
const briefMaxLen = 30

type CampaignCreator interface {
	Create(brief string) (*domain.CreateCampaignResponse, error)
	BuildCampaignName(brief string) string
}

type Service struct {
	cfg     *config.Config
	session *session.Store
	client  metaclient.Client
}

func NewService(cfg *config.Config, sessionStore *session.Store, client metaclient.Client) CampaignCreator {
	return &Service{
		cfg:     cfg,
		session: sessionStore,
		client:  client,
	}
}

// Create monta e envia a campanha para a conta de anúncio ativa. A campanha
// nasce sempre com status PAUSED: nunca entra no ar sem revisão do operador.
// O resultado da Graph API é devolvido como veio, sucesso ou falha.
func (s *Service) Create(brief string) (*domain.CreateCampaignResponse, error) {
	token := s.session.Token()
	accountID := s.session.AdAccountID()

	if token == "" || accountID == "" {
		return nil, ErrMissingCredentials
	}

	campaign := metadomain.CampaignParams{
		Name:              s.BuildCampaignName(brief),
		Objective:         metadomain.CampaignObjectiveOutcomeTraffic,
		Status:            metadomain.CampaignStatusPaused,
		SpecialAdCategory: metadomain.CampaignSpecialAdCategoryNone,
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": accountID,
		"campaign_name": campaign.Name,
	}).Info("campaigns: creating paused campaign")

	result, err := s.client.CreateCampaignByAccountID(accountID, token, campaign)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": accountID,
			"error":         err.Error(),
		}).Error("campaigns: failed to create campaign on Graph API")
		return nil, errors.Wrap(ErrMetaIntegration, err.Error())
	}

	logrus.Debug("campaigns: Graph API result\n", utils.PrettyJson([]byte(result)))

	return &domain.CreateCampaignResponse{
		Payload: domain.CampaignPayload{Name: campaign.Name},
		Result:  result,
	}, nil
}

// BuildCampaignName concatena o prefixo fixo com os primeiros caracteres do
// brief, com corte seguro para runas multibyte.
func (s *Service) BuildCampaignName(brief string) string {
	runes := []rune(brief)
	if len(runes) > briefMaxLen {
		runes = runes[:briefMaxLen]
	}

	return s.cfg.Campaign.NamePrefix + string(runes)
}
