package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MishC/Gemini-typography/internal/fonts"
	"github.com/MishC/Gemini-typography/internal/suggestion"
)

// suggestRequest is the JSON request body for a font suggestion.
type suggestRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// fontLinkResponse is the JSON response for a stylesheet link lookup.
type fontLinkResponse struct {
	Family string `json:"family"`
	CSSURL string `json:"css_url"`
}

// handleSuggest handles POST /v1/suggestions. The prompt is the title to
// analyze; the response is a single complete suggestion.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmptyPrompt)
		return
	}

	result, err := s.service.Suggest(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, suggestion.ErrEmptyTitle) {
			writeError(w, http.StatusBadRequest, msgEmptyPrompt)
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.logger.Debug("suggestion served",
		"font", result.FontName,
		"request_id", GetRequestID(r.Context()),
	)

	writeJSON(w, http.StatusOK, result)
}

// handleFontLink handles GET /v1/fonts/link. It maps a family name to its
// Google Fonts stylesheet URL without calling out to any service.
func (s *Server) handleFontLink(w http.ResponseWriter, r *http.Request) {
	family := strings.TrimSpace(r.URL.Query().Get("family"))
	if family == "" {
		writeError(w, http.StatusBadRequest, msgFamilyMissing)
		return
	}

	writeJSON(w, http.StatusOK, fontLinkResponse{
		Family: family,
		CSSURL: fonts.LinkURL(family),
	})
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports readiness to serve suggestions.
func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
