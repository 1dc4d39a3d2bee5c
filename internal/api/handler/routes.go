package handler

import (
	"net/http"

	"github.com/vfg2006/ads-console-api/internal/api/handler/router"
	"github.com/vfg2006/ads-console-api/internal/scheduler"
	"github.com/vfg2006/ads-console-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Exports(syncService *scheduler.ExportSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports/:id/run",
			Method:      http.MethodPost,
			Handler:     RunExportNow(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/exports/run",
			Method:      http.MethodPost,
			Handler:     TriggerExportTick(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/exports/status",
			Method:      http.MethodGet,
			Handler:     GetExportCronStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
