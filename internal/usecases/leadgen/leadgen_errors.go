package leadgen

import "errors"

var (
	// ErrNoSession indica sessão sem token ou sem página selecionada. O
	// endpoint responde com conjunto vazio, sem chamar a Graph API.
	ErrNoSession = errors.New("no session token or page selected")

	// ErrNoPageToken indica que a Graph API não devolveu o token com escopo
	// de página exigido para buscar leads.
	ErrNoPageToken = errors.New("could not get page access token")

	ErrMetaIntegration = errors.New("error fetching leads from Meta")
)
