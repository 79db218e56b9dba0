package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-manager-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-manager-api/internal/session"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/adreporting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/leadgen"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/selecting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Session(store *session.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/save-token",
			Method:  http.MethodGet,
			Handler: SaveToken(store),
		},
	}
}

func Pages(service selecting.Selector) []router.Route {
	return []router.Route{
		{
			Path:    "/api/pages",
			Method:  http.MethodGet,
			Handler: ListPages(service),
		},
	}
}

func AdAccounts(service selecting.Selector) []router.Route {
	return []router.Route{
		{
			Path:    "/api/adaccounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
	}
}

func Campaigns(service campaigning.CampaignCreator) []router.Route {
	return []router.Route{
		{
			Path:    "/create-campaign",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
	}
}

func Leads(service leadgen.LeadFetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/leads",
			Method:  http.MethodGet,
			Handler: ListLeads(service),
		},
	}
}

func Ads(service adreporting.AdReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: GetAdPerformance(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
