package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/middleware"
)

// CreateCampaignByAccountID cria uma campanha na conta de anúncio. O corpo da
// resposta é repassado como veio, sucesso ou erro da Graph API: quem chamou
// inspeciona o resultado para decidir o desfecho.
func (c *MetaClient) CreateCampaignByAccountID(accountID string, token string, campaign metadomain.CampaignParams) (json.RawMessage, error) {
	baseURL := fmt.Sprintf("%s/%s/campaigns", c.Cfg.Meta.URL, accountID)

	payload := url.Values{}
	payload.Add("name", campaign.Name)
	payload.Add("objective", campaign.Objective)
	payload.Add("status", campaign.Status)
	payload.Add("special_ad_categories", campaign.SpecialAdCategory)
	payload.Add("access_token", token)

	req, err := http.NewRequest(http.MethodPost, baseURL, strings.NewReader(payload.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		middleware.RecordGraphRequest("create_campaign", "network_error")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		middleware.RecordGraphRequest("create_campaign", "error")
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"status":     resp.Status,
		}).Warn("campaigns: Graph API rejected campaign creation")
		middleware.RecordGraphRequest("create_campaign", "rejected")
	} else {
		middleware.RecordGraphRequest("create_campaign", "success")
	}

	return json.RawMessage(body), nil
}
