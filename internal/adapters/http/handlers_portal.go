package web

import (
	"errors"
	"net/http"
	"strconv"

	"datao/internal/adapters/http/middleware"
	"datao/internal/application/orchestrators"
	"datao/internal/application/projections"
	"datao/internal/domain/booking"
	"datao/internal/domain/client"
)

// handlePortal shows the login page, or forwards a logged-in client straight
// to their dashboard.
func handlePortal(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, dashboardPath(sess.Dashboard), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "portal_login.html", map[string]any{})
}

// handlePortalLogin exchanges an access code for a session cookie.
func handlePortalLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{AccessCode: r.FormValue("AccessCode")}
	deps := orchestrators.LoginDeps{ClientStore: stores.ClientStore}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if errors.Is(err, orchestrators.ErrInvalidAccessCode) {
		w.WriteHeader(http.StatusUnauthorized)
		renderTemplate(w, r, "portal_login.html", map[string]any{
			"Error": "Código de acceso incorrecto. Inténtalo de nuevo.",
		})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	token, err := sessions.Create(result.ClientID, result.ClientName, result.Dashboard)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, dashboardPath(result.Dashboard), http.StatusSeeOther)
}

// handlePortalLogout destroys the session and clears the cookie.
func handlePortalLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("datao_session"); err == nil && cookie.Value != "" {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/portal", http.StatusSeeOther)
}

func dashboardPath(dashboard string) string {
	if dashboard == client.DashboardSales {
		return "/portal/sales"
	}
	return "/portal/padel"
}

// handlePadelDashboard renders the booking dashboard shell with the
// unfiltered season stats baked in. Filter changes go through the API.
func handlePadelDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetBookingStats(r.Context(),
		projections.GetBookingStatsQuery{},
		projections.GetBookingStatsDeps{SeasonStore: stores.SeasonStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "portal_padel.html", map[string]any{
		"Stats": result,
	})
}

// handleSalesDashboard renders the sales report dashboard.
func handleSalesDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetSalesReport(r.Context(),
		projections.GetSalesReportDeps{SalesStore: stores.SalesStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "portal_sales.html", map[string]any{
		"Report": result,
	})
}

// parseBookingCriteria reads the filter query parameters shared by the padel
// API endpoints. Missing parameters mean "all"; a bad window is a 400 at the
// caller via the ok flag.
func parseBookingCriteria(r *http.Request) (projections.Criteria, bool) {
	q := r.URL.Query()
	c := projections.Criteria{
		Court:   q.Get("court"),
		Gender:  q.Get("gender"),
		Channel: q.Get("channel"),
	}
	if v := q.Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return projections.Criteria{}, false
		}
		c.WindowDays = n
	}
	if v := q.Get("ref"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return projections.Criteria{}, false
		}
		c.ReferenceDay = n
	}
	return c, true
}

// handleAPIPadelStats returns the aggregated dashboard view for a filter.
func handleAPIPadelStats(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseBookingCriteria(r)
	if !ok {
		http.Error(w, "Invalid filter parameters", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetBookingStats(r.Context(),
		projections.GetBookingStatsQuery{Criteria: criteria},
		projections.GetBookingStatsDeps{SeasonStore: stores.SeasonStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, result)
}

// handleAPIPadelBookings returns the filtered raw records for the data table.
func handleAPIPadelBookings(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseBookingCriteria(r)
	if !ok {
		http.Error(w, "Invalid filter parameters", http.StatusBadRequest)
		return
	}

	records, err := stores.SeasonStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	filtered := projections.FilterBookings(records, criteria)
	if filtered == nil {
		filtered = []booking.Record{}
	}
	writeJSON(w, map[string]any{
		"total":    len(filtered),
		"bookings": filtered,
	})
}

// handleAPISalesReport returns the full sales report as JSON.
func handleAPISalesReport(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetSalesReport(r.Context(),
		projections.GetSalesReportDeps{SalesStore: stores.SalesStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, result)
}
