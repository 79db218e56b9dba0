package adreporting

import "errors"

var (
	// ErrNoSession indica sessão sem token ou sem conta de anúncio
	// selecionada. O endpoint responde com conjunto vazio.
	ErrNoSession = errors.New("no session token or ad account selected")

	ErrMetaIntegration = errors.New("error fetching ads from Meta")
)
