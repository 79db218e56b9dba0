package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Meta: config.Meta{
			URL:            serverURL,
			RequestTimeout: 5 * time.Second,
		},
	})
}

func TestMetaClient_GetUserPages(t *testing.T) {
	body := `{"data":[{"id":"111","name":"Loja A"},{"id":"222","name":"Loja B"}],"paging":{"cursors":{"before":"b","after":"a"}}}`

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/me/accounts", r.URL.Path)
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetUserPages("user-token")
	require.NoError(t, err)

	// exatamente uma chamada, corpo repassado sem remontagem
	assert.Equal(t, 1, calls)
	assert.Equal(t, body, string(resp.Raw))

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "111", resp.Data[0].ID)
	assert.Equal(t, "Loja A", resp.Data[0].Name)
}

func TestMetaClient_GetUserAdAccounts(t *testing.T) {
	body := `{"data":[{"id":"act_987","account_id":"987"}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/adaccounts", r.URL.Path)
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))

		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetUserAdAccounts("user-token")
	require.NoError(t, err)
	assert.Equal(t, body, string(resp.Raw))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "act_987", resp.Data[0].ID)
}

func TestMetaClient_GetPageAccessToken(t *testing.T) {
	t.Run("Resposta com token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/619312814603108", r.URL.Path)
			assert.Equal(t, "access_token", r.URL.Query().Get("fields"))
			assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))

			w.Write([]byte(`{"id":"619312814603108","access_token":"page-token"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		token, err := client.GetPageAccessToken("619312814603108", "user-token")
		require.NoError(t, err)
		assert.Equal(t, "page-token", token)
	})

	t.Run("Resposta sem token retorna vazio", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"619312814603108"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		token, err := client.GetPageAccessToken("619312814603108", "user-token")
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestMetaClient_GetAdsByAccountID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_987/ads", r.URL.Path)
		assert.Equal(t, "name,campaign{name},created_time,insights{impressions,clicks,ctr,spend}", r.URL.Query().Get("fields"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))

		w.Write([]byte(`{"data":[{"id":"ad-1","name":"Anúncio 01","campaign":{"name":"Campanha"},"created_time":"2024-05-01T10:00:00+0000","insights":{"data":[{"impressions":"10","clicks":"2","ctr":"20.0","spend":"1.5"}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetAdsByAccountID("act_987", "user-token", 5)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	ad := resp.Data[0]
	assert.Equal(t, "Anúncio 01", ad.Name)
	require.NotNil(t, ad.Campaign)
	assert.Equal(t, "Campanha", ad.Campaign.Name)
	require.NotNil(t, ad.Insights)
	require.Len(t, ad.Insights.Data, 1)
	assert.Equal(t, "10", ad.Insights.Data[0].Impressions)
}

func TestMetaClient_GraphErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"fbtrace_id":"AbCdEf"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetUserPages("bad-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token.")
}

func TestMetaClient_CreateCampaignByAccountID(t *testing.T) {
	t.Run("Sucesso repassa o corpo", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/act_987/campaigns", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "CrewAI - Promo", r.PostForm.Get("name"))
			assert.Equal(t, "OUTCOME_TRAFFIC", r.PostForm.Get("objective"))
			assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
			assert.Equal(t, "NONE", r.PostForm.Get("special_ad_categories"))
			assert.Equal(t, "user-token", r.PostForm.Get("access_token"))

			w.Write([]byte(`{"id":"120210000000000"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.CreateCampaignByAccountID("act_987", "user-token", metadomain.CampaignParams{
			Name:              "CrewAI - Promo",
			Objective:         "OUTCOME_TRAFFIC",
			Status:            "PAUSED",
			SpecialAdCategory: "NONE",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"120210000000000"}`, string(result))
	})

	t.Run("Rejeição da Graph API também repassa o corpo", func(t *testing.T) {
		graphError := `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"XyZ"}}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(graphError))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.CreateCampaignByAccountID("act_987", "user-token", metadomain.CampaignParams{})
		require.NoError(t, err)
		assert.JSONEq(t, graphError, string(result))
	})
}
