package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"kitchenvision/internal/design"
	"kitchenvision/internal/infra/geoip"
	"kitchenvision/internal/leads"
	"kitchenvision/internal/providers/vision"
)

// App holds the handler dependencies: the two AI capabilities behind their
// ports, the generation orchestrator, and the lead sink.
type App struct {
	Log    zerolog.Logger
	Vision vision.Analyzer
	Orch   *design.Orchestrator
	Leads  leads.Sink
	Geo    geoip.CountryResolver
}

func NewApp(log zerolog.Logger, analyzer vision.Analyzer, orch *design.Orchestrator, sink leads.Sink, geo geoip.CountryResolver) *App {
	return &App{Log: log, Vision: analyzer, Orch: orch, Leads: sink, Geo: geo}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (a *App) failure(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, failureResponse{Success: false, Error: msg})
}
