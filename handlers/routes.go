package handlers

import (
	"time"

	"github.com/camden-git/moodmatebackend/auth"
	"github.com/camden-git/moodmatebackend/config"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

const requestTimeout = 60 * time.Second

// API bundles every handler of the service.
type API struct {
	Tokens        *auth.TokenManager
	Auth          *AuthHandler
	Users         *UserHandler
	ChildProfiles *ChildProfileHandler
	Emotions      *EmotionHandler
	Expressions   *ExpressionHandler
	CarePlans     *CarePlanHandler
	Events        *EventsHandler
}

// NewAPI wires repositories, the ownership guard and handlers over db.
func NewAPI(db *gorm.DB, cfg config.Config, tokens *auth.TokenManager, hub *realtime.Hub) *API {
	userRepo := repository.NewGormUserRepository(db)
	profileRepo := repository.NewGormChildProfileRepository(db)
	emotionRepo := repository.NewGormEmotionRecordRepository(db)
	expressionRepo := repository.NewGormExpressionRecordRepository(db)
	planRepo := repository.NewGormCarePlanRepository(db)

	guard := &OwnershipGuard{Profiles: profileRepo, Expressions: expressionRepo}

	loc := cfg.DisplayLocation
	if loc == nil {
		loc = time.UTC
	}

	return &API{
		Tokens:        tokens,
		Auth:          NewAuthHandler(userRepo, tokens, cfg.LoginTokenTTL, cfg.RegisterTokenTTL),
		Users:         &UserHandler{UserRepo: userRepo, ProfileRepo: profileRepo},
		ChildProfiles: &ChildProfileHandler{ProfileRepo: profileRepo, Events: hub},
		Emotions:      &EmotionHandler{Guard: guard, EmotionRepo: emotionRepo, Events: hub, Location: loc},
		Expressions:   &ExpressionHandler{Guard: guard, ExpressionRepo: expressionRepo, Events: hub, Location: loc},
		CarePlans:     &CarePlanHandler{Guard: guard, PlanRepo: planRepo, Events: hub, Location: loc},
		Events:        &EventsHandler{Hub: hub, Upgrader: realtime.NewUpgrader(cfg.CORSAllowedOrigins)},
	}
}

// Mount registers the API routes on r.
func (a *API) Mount(r chi.Router) {
	r.Get("/healthz", Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Post("/login", a.Auth.Login)
		r.Post("/register", a.Auth.Register)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(a.Tokens))

			r.Post("/complete-onboarding", a.Users.CompleteOnboarding)
			r.Get("/user-profile", a.Users.UserProfile)
			r.Post("/child-profile", a.ChildProfiles.CreateChildProfile)

			r.Route("/expression-records", func(r chi.Router) {
				r.Post("/", a.Expressions.CreateExpressionRecord)
				r.Get("/", a.Expressions.ListExpressionRecords)
				r.Put("/", a.Expressions.UpdateExpressionRecord)
				r.Delete("/", a.Expressions.DeleteExpressionRecord)
			})

			r.Post("/emotion-record", a.Emotions.CreateEmotionRecord)
			r.Get("/emotion-record", a.Emotions.ListEmotionRecords)
			r.Get("/emotion-records", a.Emotions.ListEmotionRange)
			r.Get("/emotion-stats", a.Emotions.EmotionStats)

			r.Post("/coping-strategy", a.CarePlans.CreateCopingStrategies)
			r.Get("/coping-strategy", a.CarePlans.ListCopingStrategies)
			r.Post("/mood-trigger", a.CarePlans.CreateMoodTriggers)
			r.Get("/mood-trigger", a.CarePlans.ListMoodTriggers)
			r.Post("/sensory-preference", a.CarePlans.CreateSensoryPreferences)
			r.Get("/sensory-preference", a.CarePlans.ListSensoryPreferences)
		})
	})

	// long-lived, so outside the request timeout
	r.With(StreamAuthMiddleware(a.Tokens)).Get("/events", a.Events.Stream)
}
