package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/hirewire-dev/hirewire/backend/internal/config"
	"github.com/hirewire-dev/hirewire/backend/internal/domain"
	"github.com/hirewire-dev/hirewire/backend/internal/repository"
	"github.com/hirewire-dev/hirewire/backend/internal/storage"
	"github.com/hirewire-dev/hirewire/backend/internal/token"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	revocations *token.RevocationRegistry
	uploader    *storage.Uploader

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, uploader *storage.Uploader) (*Handler, error) {
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
		revocations: token.NewRevocationRegistry(rdb),
		uploader:    uploader,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.RegisterCandidate)
		r.Post("/register-employer", h.RegisterEmployer)
		r.Post("/login", h.Login)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.Logout)
			r.Patch("/password", h.ChangeMyPassword)
		})
	})

	// public browsing needs no token
	h.Mux.Group(func(r chi.Router) {
		r.Get("/jobs", h.GetActiveJobs)
		r.Get("/jobs/search", h.SearchJobs)
		r.With(h.jobInfo).Get("/jobs/{id}", h.GetJob)
		r.Get("/employers", h.GetAllEmployers)
		r.Get("/employers/top-hiring", h.GetTopHiringCompanies)
		r.With(h.employerInfo).Get("/employers/{id}", h.GetEmployer)
	})

	// everything below requires a valid, unrevoked token
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-profile", func(r chi.Router) {
			r.Get("/", h.GetMyProfile)
			r.Patch("/", h.UpdateMyProfile)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleEmployer, domain.RoleAdmin})).With(h.requireVerifiedEmployer).Post("/", h.CreateJob)
			r.Get("/employer/{employerID}", h.GetJobsByEmployer)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.jobInfo)
				r.Patch("/", h.UpdateJob)
				r.Delete("/", h.DeleteJob)
				r.Get("/applications", h.GetApplicationsByJob)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Post("/", h.SubmitApplication)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.GetAllApplications)
			r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Get("/mine", h.GetMyApplications)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.applicationInfo)
				r.Get("/", h.GetApplication)
				r.Patch("/status", h.UpdateApplicationStatus)
				r.Delete("/", h.DeleteApplication)
			})
		})

		r.Route("/employers", func(r chi.Router) {
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employerInfo)
				r.Patch("/", h.UpdateEmployer)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEmployer)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/verify", h.VerifyEmployer)
				r.Get("/applications", h.GetApplicationsByEmployer)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Get("/", h.GetAllUsers)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUser)
				r.Patch("/status", h.ToggleUserStatus)
				r.Delete("/", h.DeleteUser)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Get("/stats", h.GetStats)
			r.Get("/jobs", h.GetAllJobs)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Post("/resume", h.UploadResume)
			r.Post("/avatar", h.UploadAvatar)
			r.With(h.RequiredRole([]domain.Role{domain.RoleEmployer})).Post("/logo", h.UploadLogo)
		})
	})
}
