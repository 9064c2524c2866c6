package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/momentum/internal/service"
)

type Server struct {
	mx               *chi.Mux
	tasksService     service.TasksServiceI
	scheduleService  service.ScheduleServiceI
	statsService     service.StatsServiceI
	challengeService service.ChallengeServiceI
	analyticsService service.AnalyticsServiceI
	quoteService     service.QuoteServiceI
}

type ServicesList struct {
	TasksService     service.TasksServiceI
	ScheduleService  service.ScheduleServiceI
	StatsService     service.StatsServiceI
	ChallengeService service.ChallengeServiceI
	AnalyticsService service.AnalyticsServiceI
	QuoteService     service.QuoteServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		tasksService:     servicesOptions.TasksService,
		scheduleService:  servicesOptions.ScheduleService,
		statsService:     servicesOptions.StatsService,
		challengeService: servicesOptions.ChallengeService,
		analyticsService: servicesOptions.AnalyticsService,
		quoteService:     servicesOptions.QuoteService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)
	s.mx.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", s.CreateTask)
			r.Get("/", s.ListTasks)
			r.Get("/{id}", s.GetTask)
			r.Put("/{id}", s.UpdateTask)
			r.Patch("/{id}/parent", s.SetTaskParent)
			r.Delete("/{id}", s.DeleteTask)
		})
		r.Route("/daily", func(r chi.Router) {
			r.Get("/{date}", s.GetDay)
			r.Post("/{date}/add", s.AddToDay)
			r.Post("/{date}/quick-add", s.QuickAdd)
			r.Put("/{date}/reorder", s.ReorderDay)
			r.Route("/task/{id}", func(r chi.Router) {
				r.Patch("/status", s.SetStatus)
				r.Delete("/", s.RemoveFromDay)
			})
		})
		r.Post("/rollover", s.ProcessRollover)
		r.Get("/streak", s.GetStreak)
		r.Get("/stats", s.GetUserStats)
		r.Get("/achievements", s.ListAchievements)
		r.Post("/achievements/check", s.CheckAchievements)
		r.Get("/challenge/{date}", s.GetDailyChallenge)
		r.Get("/quote", s.DailyQuote)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/trends", s.Trends)
			r.Get("/insights", s.Insights)
			r.Get("/burnout", s.Burnout)
			r.Get("/summary", s.Summary)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
