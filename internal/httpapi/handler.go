package httpapi

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/focusnest/docker-server/internal/dto"
	"github.com/focusnest/docker-server/internal/envconfig"
	"github.com/focusnest/docker-server/internal/server"
)

const (
	// ServiceName identifies this server in health responses and logs.
	ServiceName = "python-docker-server"

	welcomeMessage = "Welcome to the Docker Python Server!"
	welcomeStatus  = "running"
	version        = "1.0.0"

	defaultHostname    = "unknown"
	defaultEnvironment = "development"
)

// Handler serves the welcome and runtime info endpoints.
type Handler struct {
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes wires the handler's routes onto r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/info", h.info)
}

func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	server.WriteJSON(w, http.StatusOK, dto.WelcomeResponse{
		Message: welcomeMessage,
		Status:  welcomeStatus,
		Version: version,
	})
}

// info reads HOSTNAME and ENV on every request so a changed environment is reflected without restart.
// Defaults apply only when a variable is unset; a set but empty value is reported as is.
func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	resp := dto.InfoResponse{
		RuntimeVersion: runtime.Version(),
		Hostname:       envconfig.Lookup("HOSTNAME", defaultHostname),
		Environment:    envconfig.Lookup("ENV", defaultEnvironment),
	}
	h.logger.DebugContext(r.Context(), "serving runtime info",
		slog.String("hostname", resp.Hostname),
		slog.String("environment", resp.Environment),
	)
	server.WriteJSON(w, http.StatusOK, resp)
}
