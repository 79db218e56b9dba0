package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
)

type ResponseLeadgenForms struct {
	Data   []metadomain.LeadgenForm `json:"data"`
	Paging metadomain.Paging        `json:"paging"`

	// Raw preserva o corpo original para repasse sem remontagem
	Raw json.RawMessage `json:"-"`
}

// GetLeadgenFormsByPageID lista os formulários de lead ads da página. Exige o
// token com escopo de página, não o token da sessão.
func (c *MetaClient) GetLeadgenFormsByPageID(pageID string, pageToken string) (*ResponseLeadgenForms, error) {
	baseURL := fmt.Sprintf("%s/%s/leadgen_forms", c.Cfg.Meta.URL, pageID)

	params := url.Values{}
	params.Add("access_token", pageToken)

	body, err := c.get("leadgen_forms", baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseLeadgenForms
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	response.Raw = json.RawMessage(body)

	return &response, nil
}
