package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAdsByAccountID busca os anúncios mais recentes da conta com nome da
// campanha e insights aninhados na mesma chamada, evitando N+1 requisições.
func (c *MetaClient) GetAdsByAccountID(accountID string, token string, limit int) (*ResponseAds, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "name,campaign{name},created_time,insights{impressions,clicks,ctr,spend}")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("access_token", token)

	body, err := c.get("account_ads", baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
