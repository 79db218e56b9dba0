package domain

// EmptyDataSet é a resposta silenciosa dos endpoints de leitura quando as
// pré-condições da sessão não foram satisfeitas: `{"data": []}` sem chamada
// à Graph API.
type EmptyDataSet struct {
	Data []struct{} `json:"data"`
}

func NewEmptyDataSet() EmptyDataSet {
	return EmptyDataSet{Data: []struct{}{}}
}

// ErrorEnvelope é o contrato de erro dos endpoints de leitura: status 200 com
// um campo `error` inspecionado pelo front-end.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
