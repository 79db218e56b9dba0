package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/pkg/middleware"
)

// Client expõe as chamadas usadas contra a Graph API. O token de acesso é
// sempre recebido por parâmetro: ele pertence à sessão do operador, não à
// configuração do processo.
type Client interface {
	GetUserPages(token string) (*ResponsePageList, error)
	GetUserAdAccounts(token string) (*ResponseAdAccountList, error)
	GetPageAccessToken(pageID string, token string) (string, error)
	GetLeadgenFormsByPageID(pageID string, pageToken string) (*ResponseLeadgenForms, error)
	GetLeadsByFormID(formID string, pageToken string) (*ResponseLeads, error)
	GetAdsByAccountID(accountID string, token string, limit int) (*ResponseAds, error)
	CreateCampaignByAccountID(accountID string, token string, params metadomain.CampaignParams) (json.RawMessage, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}

// get executa uma requisição GET e devolve o corpo já validado por
// HandleResponse. O nome do endpoint alimenta as métricas de integração.
func (c *MetaClient) get(endpoint string, url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		middleware.RecordGraphRequest(endpoint, "network_error")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		middleware.RecordGraphRequest(endpoint, "error")
		return nil, err
	}

	middleware.RecordGraphRequest(endpoint, "success")
	return body, nil
}

// HandleResponse lê o corpo e converte respostas não-2xx no erro estruturado
// devolvido pela Graph API.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			if errResp.IsTokenExpired() {
				logrus.Warn("Token da sessão expirado na Graph API")
			}
			return nil, fmt.Errorf("erro da Graph API: %s", errResp.String())
		}

		return nil, fmt.Errorf("erro da Graph API: status %s", resp.Status)
	}

	return body, nil
}
