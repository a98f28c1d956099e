package web

import (
	"net/http"

	"datao/internal/adapters/http/middleware"
	"datao/internal/domain/client"
)

// registerRoutes wires every page and API endpoint onto the mux.
// Dashboard pages and their APIs are gated on the session's dashboard type.
func registerRoutes(mux *http.ServeMux) {
	// Public site
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("POST /contact", handleContact)

	// Portal auth
	mux.HandleFunc("GET /portal", handlePortal)
	mux.HandleFunc("POST /portal/login", handlePortalLogin)
	mux.HandleFunc("POST /portal/logout", handlePortalLogout)

	// Dashboards
	padelOnly := middleware.RequireDashboard(client.DashboardPadel)
	salesOnly := middleware.RequireDashboard(client.DashboardSales)

	mux.Handle("GET /portal/padel", padelOnly(http.HandlerFunc(handlePadelDashboard)))
	mux.Handle("GET /portal/sales", salesOnly(http.HandlerFunc(handleSalesDashboard)))

	// Dashboard APIs
	mux.Handle("GET /api/padel/stats", padelOnly(http.HandlerFunc(handleAPIPadelStats)))
	mux.Handle("GET /api/padel/bookings", padelOnly(http.HandlerFunc(handleAPIPadelBookings)))
	mux.Handle("GET /api/sales/report", salesOnly(http.HandlerFunc(handleAPISalesReport)))
}
