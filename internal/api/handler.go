package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ihworker/custom-authn-mfe/internal/hooks"
	"github.com/ihworker/custom-authn-mfe/internal/render"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes a read-only view of the hook registry over HTTP.
type Handler struct {
	registry *hooks.Registry
	plugins  []string

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler over registry. plugins lists the loaded
// plugin names in load order.
func NewHandler(registry *hooks.Registry, plugins []string, opts ...HandlerOption) *Handler {
	h := &Handler{
		registry: registry,
		plugins:  append([]string(nil), plugins...),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	})
}

func (h *Handler) handlePlugins(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pluginsResponse{Plugins: h.plugins})
}

func (h *Handler) handleConfigDefaults(w http.ResponseWriter, _ *http.Request) {
	items := h.registry.ConfigDefaults.Items()
	writeJSON(w, http.StatusOK, configDefaultsResponse{
		Filter: h.registry.ConfigDefaults.Name(),
		Items:  items,
	})
}

func (h *Handler) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, render.MergeDefaults(h.registry.ConfigDefaults.Items()))
}

func (h *Handler) handleEnvPatches(w http.ResponseWriter, _ *http.Request) {
	patches := h.registry.EnvPatches.Items()
	resp := envPatchesResponse{
		Filter: h.registry.EnvPatches.Name(),
		Items:  make([]envPatchView, 0, len(patches)),
	}
	for _, p := range patches {
		assignments, err := render.Assignments(p.Text)
		view := envPatchView{Name: p.Name, Text: p.Text, Assignments: assignments}
		if err != nil {
			view.Error = err.Error()
		}
		resp.Items = append(resp.Items, view)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEnv(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.EnvFile(h.registry.EnvPatches.Items())))
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type pluginsResponse struct {
	Plugins []string `json:"plugins"`
}

type configDefaultsResponse struct {
	Filter string                `json:"filter"`
	Items  []hooks.ConfigDefault `json:"items"`
}

type envPatchesResponse struct {
	Filter string         `json:"filter"`
	Items  []envPatchView `json:"items"`
}

type envPatchView struct {
	Name        string              `json:"name"`
	Text        string              `json:"text"`
	Assignments []render.Assignment `json:"assignments"`
	Error       string              `json:"error,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}
