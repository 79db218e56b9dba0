package metadomain

// Ad representa um anúncio retornado por /{ad-account-id}/ads com os campos
// aninhados de campanha e insights pedidos na mesma chamada.
type Ad struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Campaign    *AdCampaign `json:"campaign,omitempty"`
	CreatedTime string      `json:"created_time,omitempty"`
	Insights    *AdInsights `json:"insights,omitempty"`
}

type AdCampaign struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type AdInsights struct {
	Data []AdInsight `json:"data"`
}

// AdInsight carrega as métricas de desempenho. A API do Meta devolve os
// valores numéricos como strings.
type AdInsight struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CTR         string `json:"ctr"`
	Spend       string `json:"spend"`
}
