package metadomain

// Constantes fixas da criação de campanha. O status PAUSED garante que a
// campanha nunca entra no ar automaticamente.
const (
	CampaignObjectiveOutcomeTraffic = "OUTCOME_TRAFFIC"
	CampaignStatusPaused            = "PAUSED"
	CampaignSpecialAdCategoryNone   = "NONE"
)

type CampaignParams struct {
	Name              string
	Objective         string
	Status            string
	SpecialAdCategory string
}
