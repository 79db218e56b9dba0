package domain

import "encoding/json"

type CreateCampaignRequest struct {
	Brief string `json:"brief"`
}

type CampaignPayload struct {
	Name string `json:"name"`
}

// CreateCampaignResponse carrega o nome construído (para confirmação do
// chamador) e o resultado bruto da Graph API, sucesso ou falha.
type CreateCampaignResponse struct {
	Payload CampaignPayload `json:"payload"`
	Result  json.RawMessage `json:"result"`
}
