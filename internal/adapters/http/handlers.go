package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"datao/internal/adapters/http/middleware"
	"datao/internal/application/orchestrators"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	clientName := ""
	dashboard := ""
	if ok {
		clientName = sess.ClientName
		dashboard = sess.Dashboard
	}

	funcMap := template.FuncMap{
		"clientName": func() string { return clientName },
		"dashboard":  func() string { return dashboard },
		"isLoggedIn": func() bool { return clientName != "" },
		"csrfToken":  func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// homeContent is the landing page copy, rendered through goldmark.
const homeContent = `
## Convierte tus datos en decisiones

Datao construye dashboards a la medida para negocios que ya tienen los
datos pero no las respuestas. Conectamos tus reservas, ventas e
inventarios y los convertimos en indicadores que puedes leer en un
minuto.

- **Diagnóstico gratuito.** Revisamos tus fuentes de datos y te decimos
  qué se puede medir hoy.
- **Dashboards en semanas, no meses.** KPIs, tendencias y filtros sobre
  tus propios datos.
- **Sin cambiar tus sistemas.** Trabajamos con lo que ya usas.

¿Quieres ver cómo se siente? Pide acceso al portal de demostración.
`

// handleHome renders the public landing page.
func handleHome(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "home.html", map[string]any{
		"Content": homeContent,
	})
}

// handleContact accepts a lead from the contact form or as JSON.
func handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	input := orchestrators.SubmitLeadInput{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.Name = r.FormValue("Name")
		input.Email = r.FormValue("Email")
		input.Business = r.FormValue("Business")
		input.Message = r.FormValue("Message")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	deps := orchestrators.SubmitLeadDeps{
		LeadStore:  stores.LeadStore,
		Email:      emailSender,
		NotifyTo:   leadNotifyTo,
		GenerateID: generateID,
	}
	l, err := orchestrators.ExecuteSubmitLead(ctx, input, deps)
	if errors.Is(err, orchestrators.ErrInvalidLead) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTML {
		renderTemplate(w, r, "home.html", map[string]any{
			"Content":   homeContent,
			"LeadSaved": true,
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]string{"id": l.ID})
}
