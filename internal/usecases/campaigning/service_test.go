package campaigning

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/session"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Campaign: config.Campaign{NamePrefix: "CrewAI - "},
	}
}

func TestService_BuildCampaignName(t *testing.T) {
	service := &Service{cfg: newTestConfig()}

	tests := []struct {
		name     string
		brief    string
		expected string
	}{
		{
			name:     "Brief curto entra inteiro",
			brief:    "Promo de inverno",
			expected: "CrewAI - Promo de inverno",
		},
		{
			// brief com 45 caracteres: entram só os primeiros 30
			name:     "Brief com 45 caracteres é cortado nos primeiros 30",
			brief:    strings.Repeat("abcde", 9),
			expected: "CrewAI - " + strings.Repeat("abcde", 6),
		},
		{
			name:     "Brief vazio vira só o prefixo",
			brief:    "",
			expected: "CrewAI - ",
		},
		{
			name:     "Corte não quebra runas multibyte",
			brief:    strings.Repeat("ç", 40),
			expected: "CrewAI - " + strings.Repeat("ç", 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.BuildCampaignName(tt.brief))
		})
	}
}

func TestService_Create(t *testing.T) {
	graphResult := json.RawMessage(`{"id":"120210000000000"}`)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		CreateCampaignByAccountID("act_987", "user-token", metadomain.CampaignParams{
			Name:              "CrewAI - Lançamento loja nova",
			Objective:         "OUTCOME_TRAFFIC",
			Status:            "PAUSED",
			SpecialAdCategory: "NONE",
		}).
		Return(graphResult, nil)

	store := session.NewStore(config.Session{DefaultAdAccountID: "default-account"})
	store.SaveToken("user-token")
	// conta selecionada pela listagem anterior (selectFirst)
	store.SetAdAccountID("act_987")

	service := NewService(newTestConfig(), store, client)

	resp, err := service.Create("Lançamento loja nova")
	require.NoError(t, err)
	assert.Equal(t, "CrewAI - Lançamento loja nova", resp.Payload.Name)
	assert.Equal(t, graphResult, resp.Result)
}

func TestService_Create_MissingCredentials(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		accountID string
	}{
		{name: "Sem token", token: "", accountID: "act_987"},
		{name: "Sem conta de anúncio", token: "user-token", accountID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// nenhuma chamada à Graph API é esperada
			client := mocks.NewMockClient(ctrl)

			store := session.NewStore(config.Session{})
			store.SaveToken(tt.token)
			store.SetAdAccountID(tt.accountID)

			service := NewService(newTestConfig(), store, client)

			resp, err := service.Create("qualquer brief")
			assert.ErrorIs(t, err, ErrMissingCredentials)
			assert.Nil(t, resp)
		})
	}
}

func TestService_Create_GraphFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		CreateCampaignByAccountID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	store := session.NewStore(config.Session{})
	store.SaveToken("user-token")
	store.SetAdAccountID("act_987")

	service := NewService(newTestConfig(), store, client)

	resp, err := service.Create("brief")
	assert.ErrorIs(t, err, ErrMetaIntegration)
	assert.Nil(t, resp)
}
