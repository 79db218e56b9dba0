package adreporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

func TestFactoryAdSummary(t *testing.T) {
	tests := []struct {
		name     string
		ad       metadomain.Ad
		expected domain.AdSummary
	}{
		{
			name: "Anúncio completo",
			ad: metadomain.Ad{
				Name:        "Anúncio 01",
				Campaign:    &metadomain.AdCampaign{Name: "Campanha Verão"},
				CreatedTime: "2024-05-01T12:34:56+0000",
				Insights: &metadomain.AdInsights{
					Data: []metadomain.AdInsight{
						{Impressions: "1200", Clicks: "34", CTR: "2.83", Spend: "150.75"},
					},
				},
			},
			expected: domain.AdSummary{
				Campaign:    "Campanha Verão",
				AdName:      "Anúncio 01",
				Impressions: 1200,
				Clicks:      34,
				CTR:         2.83,
				Spend:       150.75,
				CreatedTime: "2024-05-01T12:34:56+0000",
			},
		},
		{
			name: "Anúncio sem insights - métricas zeradas e campos com traço",
			ad:   metadomain.Ad{},
			expected: domain.AdSummary{
				Campaign:    "-",
				AdName:      "-",
				Impressions: 0,
				Clicks:      0,
				CTR:         0,
				Spend:       0,
				CreatedTime: "-",
			},
		},
		{
			name: "Insights com valores ilegíveis viram zero",
			ad: metadomain.Ad{
				Name:        "Anúncio 02",
				CreatedTime: "2024-05-02T00:00:00+0000",
				Insights: &metadomain.AdInsights{
					Data: []metadomain.AdInsight{
						{Impressions: "n/a", Clicks: "", CTR: "abc", Spend: "xyz"},
					},
				},
			},
			expected: domain.AdSummary{
				Campaign:    "-",
				AdName:      "Anúncio 02",
				Impressions: 0,
				Clicks:      0,
				CTR:         0,
				Spend:       0,
				CreatedTime: "2024-05-02T00:00:00+0000",
			},
		},
		{
			name: "Lista de insights vazia conta como ausente",
			ad: metadomain.Ad{
				Name:     "Anúncio 03",
				Insights: &metadomain.AdInsights{Data: []metadomain.AdInsight{}},
			},
			expected: domain.AdSummary{
				Campaign:    "-",
				AdName:      "Anúncio 03",
				CreatedTime: "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FactoryAdSummary(tt.ad))
		})
	}
}
