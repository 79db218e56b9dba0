package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccountList struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`

	// Raw preserva o corpo original para repasse sem remontagem
	Raw json.RawMessage `json:"-"`
}

// GetUserAdAccounts lista as contas de anúncio da identidade do token
// (somente a primeira página de resultados).
func (c *MetaClient) GetUserAdAccounts(token string) (*ResponseAdAccountList, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("access_token", token)

	body, err := c.get("me_adaccounts", baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccountList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	response.Raw = json.RawMessage(body)

	return &response, nil
}
