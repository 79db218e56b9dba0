package metadomain

type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id,omitempty"`
	Name      string `json:"name,omitempty"`
}
