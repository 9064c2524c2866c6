// @title Momentum API
// @description API for personal task-tracker app "Momentum"
// @BasePath /api
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/limbo/momentum/internal/api"
	"github.com/limbo/momentum/internal/quotes"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	tasksRepo := repository.NewTasksRepo(&dbCfg)
	dailyRepo := repository.NewDailyTasksRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)
	challengesRepo := repository.NewChallengesRepo(&dbCfg)

	// Redis is optional, quote selection degrades to no recency
	// exclusion without it.
	var recency *quotes.RecencyStore
	if addr := cfg.GetString("REDIS_ADDRESS"); addr != "" {
		store, err := quotes.NewRecencyStore(
			addr,
			cfg.GetString("REDIS_PASSWORD"),
			cfg.GetInt("REDIS_DB", 0),
			time.Duration(cfg.GetInt("QUOTE_HISTORY_TTL_HOURS", 72))*time.Hour,
		)
		if err != nil {
			log.Println("quote recency store unavailable: " + err.Error())
		} else {
			recency = store
			cleanup.Register(&cleanup.Job{
				Name: "closing redis client",
				F:    store.Close,
			})
		}
	}

	serv := api.New(&api.ServicesList{
		TasksService:     service.NewTasksService(tasksRepo),
		ScheduleService:  service.NewScheduleService(tasksRepo, dailyRepo),
		StatsService:     service.NewStatsService(dailyRepo, achievementsRepo, challengesRepo),
		ChallengeService: service.NewChallengeService(dailyRepo, challengesRepo, nil),
		AnalyticsService: service.NewAnalyticsService(dailyRepo),
		QuoteService:     service.NewQuoteService(dailyRepo, recency, nil),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
