package routes

import (
	"github.com/alinapilipuk-web/kspro/handlers"
	"github.com/alinapilipuk-web/kspro/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Championship *handlers.ChampionshipHandler
	Team         *handlers.TeamHandler
	Match        *handlers.MatchHandler
	Player       *handlers.PlayerHandler
	Goal         *handlers.GoalHandler
	Overview     *handlers.OverviewHandler
	Auth         *handlers.AuthHandler
}

func InitRoutes(h Handlers, jwtSecret string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/championships", func(r chi.Router) {
		// Публичные маршруты для просмотра чемпионатов
		r.Get("/", h.Championship.List)
		r.Get("/active", h.Championship.GetActive)
		r.Get("/{championshipID}", h.Championship.GetByID)
		r.Get("/{championshipID}/overview", h.Overview.Overview)
		r.Get("/{championshipID}/table", h.Overview.Table)
		r.Get("/{championshipID}/bracket", h.Overview.Bracket)
		r.Get("/{championshipID}/stages/{stage}/matches", h.Match.ListByStage)

		// Защищённые маршруты только для администратора
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtSecret))

			r.Post("/", h.Championship.Create)
			r.Put("/{championshipID}", h.Championship.Update)
			r.Delete("/{championshipID}", h.Championship.Delete)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.List)
		r.Get("/{teamID}", h.Team.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtSecret))

			r.Post("/", h.Team.Create)
			r.Put("/{teamID}", h.Team.Update)
			r.Delete("/{teamID}", h.Team.Delete)
			r.Post("/{teamID}/logo", h.Team.UploadLogo)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.List)
		r.Get("/{matchID}", h.Match.GetByID)
		r.Get("/{matchID}/goals", h.Goal.ListByMatch)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtSecret))

			r.Post("/", h.Match.Create)
			r.Put("/{matchID}", h.Match.Update)
			r.Delete("/{matchID}", h.Match.Delete)
			r.Post("/{matchID}/goals", h.Goal.Add)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.List)
		r.Get("/{playerID}", h.Player.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtSecret))

			r.Post("/", h.Player.Create)
			r.Put("/{playerID}", h.Player.Update)
			r.Delete("/{playerID}", h.Player.Delete)
		})
	})

	router.Route("/goals", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtSecret))

			r.Delete("/{goalID}", h.Goal.Delete)
		})
	})

	return router
}
