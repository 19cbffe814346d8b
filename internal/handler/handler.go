package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/harbourkitchen/roster-manager/backend/internal/config"
	"github.com/harbourkitchen/roster-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.metrics)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	h.Mux.Handle("/metrics", promhttp.Handler())

	h.Mux.Route("/employees", func(r chi.Router) {
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.GetAllEmployees)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.employeeRecord)
			r.Get("/", h.GetEmployee)
			r.Patch("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
		})
	})

	h.Mux.Route("/rosters", func(r chi.Router) {
		r.Post("/", h.CreateRosterEntry)
		r.Get("/", h.GetRosterEntries)
		r.Put("/week/{monday}", h.ReplaceWeekRoster)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.rosterEntry)
			r.Get("/", h.GetRosterEntry)
			r.Patch("/", h.UpdateRosterEntry)
			r.Delete("/", h.DeleteRosterEntry)
		})
	})

	h.Mux.Route("/business-requirements", func(r chi.Router) {
		r.Post("/", h.CreateDayRequirement)
		r.Get("/", h.GetAllDayRequirements)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.dayRequirement)
			r.Get("/", h.GetDayRequirement)
			r.Patch("/", h.UpdateDayRequirement)
			r.Delete("/", h.DeleteDayRequirement)
		})
	})

	h.Mux.Route("/business-hours", func(r chi.Router) {
		r.Get("/", h.GetAllBusinessHours)
		r.Patch("/", h.UpdateBusinessHours)
	})

	h.Mux.Get("/dashboard/week", h.GetWeekSummary)
}
