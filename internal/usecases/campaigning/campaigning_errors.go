package campaigning

import "errors"

var (
	// ErrMissingCredentials indica que não há token salvo ou conta de anúncio
	// selecionada. Único caso em que a API responde com 400 explícito.
	ErrMissingCredentials = errors.New("no token or ad account")

	ErrMetaIntegration = errors.New("error creating campaign on Meta")
)
