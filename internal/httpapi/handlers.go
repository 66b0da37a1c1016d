package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"ruralai/internal/llm"
	"ruralai/pkg/types"
)

func handleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "index", IndexView{})
}

func handleAbout(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "about", nil)
}

// handleAskForm serves POST /. Every outcome renders the index page with
// status 200; failures go to the error field.
func handleAskForm(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := parseForm(r); err != nil {
			renderError(w, http.StatusBadRequest, "Bad request")
			return
		}
		raw := r.PostFormValue("prompt")
		prompt := strings.TrimSpace(raw)
		view := IndexView{Prompt: raw}
		if prompt == "" {
			view.ErrorMessage = msgEmptyPrompt
			render(w, http.StatusOK, "index", view)
			return
		}

		res := ask(svc, r, prompt)
		switch res.Outcome {
		case llm.OutcomeOK:
			view.Response = res.Text
		case llm.OutcomeModelUnavailable:
			view.ErrorMessage = msgModelUnavailable
		default:
			view.ErrorMessage = res.String()
		}
		render(w, http.StatusOK, "index", view)
	}
}

// parseForm reads urlencoded and multipart bodies alike.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxBodyBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

// handleAskJSON serves POST /api/ask.
func handleAskJSON(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			writeJSONError(w, http.StatusBadRequest, msgEmptyPrompt)
			return
		}

		res := ask(svc, r, prompt)
		switch res.Outcome {
		case llm.OutcomeOK:
			writeJSON(w, types.AskResponse{Response: res.Text})
		case llm.OutcomeModelUnavailable:
			writeJSONError(w, resultStatus(res), msgModelUnavailable)
		default:
			writeJSONError(w, resultStatus(res), res.String())
		}
	}
}

// ask runs one generation bound to both the request and the server lifetime.
func ask(svc Service, r *http.Request, prompt string) llm.Result {
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	start := time.Now()
	res := svc.Ask(ctx, prompt)
	ev := logger().Info()
	if !res.OK() {
		ev = logger().Warn().Str("reason", res.Reason)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		ev = ev.Str("request_id", rid)
	}
	ev.Str("outcome", res.Outcome.String()).Int("prompt_len", len(prompt)).Dur("dur", time.Since(start)).Msg("ask")
	return res
}
