package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type ResponsePageList struct {
	Data   []metadomain.Page `json:"data"`
	Paging metadomain.Paging `json:"paging"`

	// Raw preserva o corpo original para repasse sem remontagem
	Raw json.RawMessage `json:"-"`
}

// GetUserPages lista as páginas administráveis pela identidade do token
// (somente a primeira página de resultados).
func (c *MetaClient) GetUserPages(token string) (*ResponsePageList, error) {
	baseURL := fmt.Sprintf("%s/me/accounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("access_token", token)

	body, err := c.get("me_accounts", baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponsePageList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	response.Raw = json.RawMessage(body)

	return &response, nil
}
