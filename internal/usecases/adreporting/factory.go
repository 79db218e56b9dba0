package adreporting

import (
	"strconv"

	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// placeholder exibido quando o campo não veio da Graph API
const placeholder = "-"

// FactoryAdSummary achata um anúncio da Graph API no registro plano do
// painel. Campos e métricas ausentes viram "-" e 0; valores numéricos chegam
// como strings e falha de conversão também vira 0.
func FactoryAdSummary(ad metadomain.Ad) domain.AdSummary {
	summary := domain.AdSummary{
		Campaign:    placeholder,
		AdName:      placeholder,
		CreatedTime: placeholder,
	}

	if ad.Campaign != nil && ad.Campaign.Name != "" {
		summary.Campaign = ad.Campaign.Name
	}

	if ad.Name != "" {
		summary.AdName = ad.Name
	}

	if ad.CreatedTime != "" {
		summary.CreatedTime = ad.CreatedTime
	}

	if ad.Insights != nil && len(ad.Insights.Data) > 0 {
		insight := ad.Insights.Data[0]
		summary.Impressions = parseInt(insight.Impressions)
		summary.Clicks = parseInt(insight.Clicks)
		summary.CTR = parseFloat(insight.CTR)
		summary.Spend = parseFloat(insight.Spend)
	}

	return summary
}

func parseInt(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
