package server

import (
	"context"
	"time"

	"github.com/simplyrugby/club-server/internal/adapters/config"
	httpapi "github.com/simplyrugby/club-server/internal/adapters/controller/http"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/handlers"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/middlewares"
	"github.com/simplyrugby/club-server/internal/adapters/database/postgres"
	"github.com/simplyrugby/club-server/internal/domain/service"
	"github.com/simplyrugby/club-server/pkg/logger"
	"github.com/simplyrugby/club-server/pkg/smtp"
	"github.com/spf13/viper"
)

type Server struct {
	api *httpapi.Server
}

// New wires storages, services and handlers into a ready-to-start server.
func New(cfg *config.Config) (*Server, error) {
	serviceLogger, err := logger.Named("service")
	if err != nil {
		return nil, err
	}

	// storages
	userStorage := postgres.NewUserStorage(cfg.Database)
	squadStorage := postgres.NewSquadStorage(cfg.Database)
	coachStorage := postgres.NewCoachStorage(cfg.Database)
	playerStorage := postgres.NewPlayerStorage(cfg.Database)
	juniorStorage := postgres.NewJuniorPlayerStorage(cfg.Database)
	assistantStorage := postgres.NewMemberAssistantStorage(cfg.Database)
	planStorage := postgres.NewTrainingPlanStorage(cfg.Database)
	sessionStorage := postgres.NewTrainingSessionStorage(cfg.Database)
	attendanceStorage := postgres.NewAttendanceStorage(cfg.Database)
	messageStorage := postgres.NewMessageStorage(cfg.Database)
	gameStorage := postgres.NewGameStorage(cfg.Database)
	seasonStorage := postgres.NewSeasonStorage(cfg.Database)
	venueStorage := postgres.NewVenueStorage(cfg.Database)
	assessmentStorage := postgres.NewSkillAssessmentStorage(cfg.Database)

	mailer := smtp.NewClient(cfg.SMTP)

	// services
	authorizer := service.NewSquadAuthorizer(coachStorage, planStorage)
	sessionTTL := viper.GetDuration("service.session.ttl")
	if sessionTTL == 0 {
		sessionTTL = 24 * time.Hour
	}

	authService := service.NewAuthService(userStorage, cfg.Redis.Sessions, mailer, sessionTTL, serviceLogger)
	userService := service.NewUserService(userStorage, serviceLogger)
	rosterService := service.NewRosterService(playerStorage, squadStorage, authorizer, serviceLogger)
	squadService := service.NewSquadService(squadStorage, playerStorage, juniorStorage, coachStorage, serviceLogger)
	trainingService := service.NewTrainingService(planStorage, sessionStorage, attendanceStorage, playerStorage, squadStorage, serviceLogger)
	notificationService := service.NewNotificationService(
		messageStorage, userStorage, assistantStorage,
		playerStorage, juniorStorage, coachStorage, squadStorage,
		serviceLogger,
	)
	gameService := service.NewGameService(gameStorage, seasonStorage, venueStorage, serviceLogger)
	skillService := service.NewSkillService(assessmentStorage, playerStorage, authorizer, serviceLogger)
	reportService := service.NewReportService(
		playerStorage, squadStorage, userStorage,
		assessmentStorage, attendanceStorage, sessionStorage, gameStorage,
		serviceLogger,
	)

	api := httpapi.NewServer(httpapi.Options{
		Debug:        viper.GetBool("settings.debug"),
		Middlewares:  middlewares.New(authService),
		Auth:         handlers.NewAuthHandler(authService, userService),
		Roster:       handlers.NewRosterHandler(rosterService, squadService, coachStorage),
		Training:     handlers.NewTrainingHandler(trainingService, authorizer, coachStorage),
		Notification: handlers.NewNotificationHandler(notificationService, assistantStorage),
		Game:         handlers.NewGameHandler(gameService),
		Report:       handlers.NewReportHandler(reportService, skillService, coachStorage),
	})

	return &Server{api: api}, nil
}

func (s *Server) Start() error {
	logger.Log.Info("Server starting")
	return s.api.Start(viper.GetString("service.http.address"))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.api.Shutdown(ctx)
}
