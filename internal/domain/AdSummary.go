package domain

// AdSummary é o registro plano exibido no painel: nome da campanha, nome do
// anúncio e métricas do primeiro insight retornado. Campos ausentes viram 0
// ou "-".
type AdSummary struct {
	Campaign    string  `json:"campaign"`
	AdName      string  `json:"ad_name"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Spend       float64 `json:"spend"`
	CreatedTime string  `json:"created_time"`
}

type AdSummaryResponse struct {
	Data []AdSummary `json:"data"`
}
