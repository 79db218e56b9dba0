package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type ResponseLeads struct {
	Data   []metadomain.Lead `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetLeadsByFormID lista os leads submetidos em um formulário (somente a
// primeira página de resultados).
func (c *MetaClient) GetLeadsByFormID(formID string, pageToken string) (*ResponseLeads, error) {
	baseURL := fmt.Sprintf("%s/%s/leads", c.Cfg.Meta.URL, formID)

	params := url.Values{}
	params.Add("access_token", pageToken)

	body, err := c.get("form_leads", baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseLeads
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
