package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

type responsePageAccessToken struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
}

// GetPageAccessToken resolve o token de acesso com escopo de página exigido
// pelas chamadas de lead ads. Retorna string vazia quando a resposta não traz
// o campo access_token.
func (c *MetaClient) GetPageAccessToken(pageID string, token string) (string, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, pageID)

	params := url.Values{}
	params.Add("fields", "access_token")
	params.Add("access_token", token)

	body, err := c.get("page_access_token", baseURL+"?"+params.Encode())
	if err != nil {
		return "", err
	}

	var response responsePageAccessToken
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.AccessToken, nil
}
