package selecting

import "errors"

var (
	// ErrNoSessionToken indica que nenhum token foi salvo na sessão. Os
	// endpoints de leitura respondem com conjunto vazio, sem chamar a Graph API.
	ErrNoSessionToken = errors.New("no session token saved")

	ErrMetaIntegration = errors.New("error fetching data from Meta")
)
