package wire

import (
	"net/http"

	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/subscription"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes. infra.Changes should be hub
// so that writes refresh live subscribers.
func Wiring(repo *repository.Repository, infra usecase.Infra, hub *subscription.Hub, config *utils.Config, logger *zap.Logger) *App {
	registerFetchers(hub, repo)

	service := usecase.NewService(repo, infra, config, logger)
	handler := adaptor.NewHandler(service, hub, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireTour(r, handler.Tour, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireCustomRequest(r, handler.CustomRequest, repo, logger)
	wireSubmission(r, handler.Submission, repo, logger)
	wireFeedback(r, handler.Feedback, repo, logger)
	wireContent(r, handler.Content, repo, logger)
	wireStream(r, handler.Stream, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// admin returns the middleware chain for /api/admin routes
func admin(repo *repository.Repository, log *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(log),
	}
}
