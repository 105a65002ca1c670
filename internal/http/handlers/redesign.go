package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"kitchenvision/internal/design"
	"kitchenvision/internal/domain"
	"kitchenvision/internal/leads"
	"kitchenvision/internal/providers/vision"
)

const maxUploadBytes = 10 << 20

// analysisInstruction is the fixed instruction sent to the vision capability
// for the analyze action.
const analysisInstruction = `You are a professional kitchen designer. Analyze this kitchen photo in detail.
Describe the room dimensions, layout type, existing features, lighting situation,
architectural elements, current challenges, and renovation opportunities.
Be specific and concrete; one observation per line.`

type analyzeResponse struct {
	Success          bool                 `json:"success"`
	SpaceAnalysis    domain.SpaceAnalysis `json:"spaceAnalysis"`
	OriginalAnalysis string               `json:"originalAnalysis"`
}

type generateResponse struct {
	Success bool                     `json:"success"`
	Designs []domain.GeneratedDesign `json:"designs"`
	Stats   domain.GenerationStats   `json:"stats"`
	Message string                   `json:"message"`
}

// KitchenDesigner is the single intake endpoint. The action form field
// selects between photo analysis and design generation; anything else is an
// invalid-action failure with no capability call.
func (a *App) KitchenDesigner(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			a.Log.Error().Interface("panic", rec).Msg("kitchen designer request failed")
			a.failure(w, http.StatusInternalServerError, "Internal server error")
		}
	}()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.failure(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	switch action := r.FormValue("action"); action {
	case "analyze":
		a.handleAnalyze(w, r)
	case "generate":
		a.handleGenerate(w, r)
	default:
		a.Log.Debug().Str("action", action).Err(domain.ErrInvalidAction).Msg("rejected request")
		a.failure(w, http.StatusBadRequest, "Invalid action")
	}
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	img, _, err := a.readImage(r)
	if err != nil {
		a.failure(w, http.StatusBadRequest, "Kitchen photo is required")
		return
	}

	text, err := a.Vision.Analyze(r.Context(), img, analysisInstruction)
	if err != nil {
		a.Log.Error().Err(err).Msg("vision analysis failed")
		a.failure(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	a.json(w, http.StatusOK, analyzeResponse{
		Success:          true,
		SpaceAnalysis:    design.ExtractSpaceAnalysis(text),
		OriginalAnalysis: text,
	})
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(r.FormValue("preferences")), &prefs); err != nil {
		a.failure(w, http.StatusBadRequest, "Invalid preferences payload")
		return
	}
	var contact domain.Contact
	if err := json.Unmarshal([]byte(r.FormValue("contact")), &contact); err != nil {
		a.failure(w, http.StatusBadRequest, "Invalid contact payload")
		return
	}

	_, imageRef, err := a.readImage(r)
	if err != nil {
		a.failure(w, http.StatusBadRequest, "Kitchen photo is required")
		return
	}

	a.captureLead(r, contact)

	designs, stats := a.Orch.Generate(r.Context(), prefs, imageRef)
	a.json(w, http.StatusOK, generateResponse{
		Success: true,
		Designs: designs,
		Stats:   stats,
		Message: fmt.Sprintf("Successfully generated %d kitchen design concepts", stats.ImagesGenerated),
	})
}

// captureLead hands the contact to the lead sink. Capture is fire-and-forget:
// a sink error is logged and the request proceeds.
func (a *App) captureLead(r *http.Request, contact domain.Contact) {
	country := ""
	if a.Geo != nil {
		if code, err := a.Geo.CountryCode(clientIP(r)); err == nil {
			country = code
		}
	}
	lead := leads.New(contact, "generate", country)
	if err := a.Leads.Capture(r.Context(), lead); err != nil {
		a.Log.Warn().Err(err).Str("email", contact.Email).Msg("lead capture failed")
	}
}

func (a *App) readImage(r *http.Request) (vision.Image, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return vision.Image{}, "", err
	}
	defer func() {
		_ = file.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return vision.Image{}, "", err
	}
	if len(data) == 0 {
		return vision.Image{}, "", domain.ErrMissingImage
	}
	return vision.Image{Data: data, MIME: header.Header.Get("Content-Type")}, header.Filename, nil
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		if ip := strings.TrimSpace(strings.Split(xf, ",")[0]); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
