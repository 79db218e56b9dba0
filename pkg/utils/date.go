package utils

import "time"

// graphTimeLayout é o formato de created_time da Graph API: RFC3339 com o
// fuso sem dois-pontos (ex.: 2024-05-01T12:34:56+0000).
const graphTimeLayout = "2006-01-02T15:04:05-0700"

// ParseGraphTime converte um timestamp da Graph API. Valores vazios, "-" ou
// ilegíveis retornam o tempo zero.
func ParseGraphTime(value string) time.Time {
	if value == "" || value == "-" {
		return time.Time{}
	}

	if parsed, err := time.Parse(graphTimeLayout, value); err == nil {
		return parsed
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed
	}

	return time.Time{}
}
