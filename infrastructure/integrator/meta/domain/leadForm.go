package metadomain

type LeadgenForm struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Lead é um registro de contato submetido por um formulário de lead ads.
type Lead struct {
	ID          string      `json:"id"`
	CreatedTime string      `json:"created_time,omitempty"`
	FieldData   []LeadField `json:"field_data,omitempty"`
}

type LeadField struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}
