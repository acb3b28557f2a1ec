// Package http assembles the echo application: middleware, error handling
// and the full route table.
package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/handlers"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/helpers"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/middlewares"
	"github.com/simplyrugby/club-server/internal/domain/entity"
)

type Options struct {
	Debug bool

	Middlewares *middlewares.Middlewares

	Auth         *handlers.AuthHandler
	Roster       *handlers.RosterHandler
	Training     *handlers.TrainingHandler
	Notification *handlers.NotificationHandler
	Game         *handlers.GameHandler
	Report       *handlers.ReportHandler
}

type Server struct {
	app *echo.Echo
}

func NewServer(opts Options) *Server {
	app := echo.New()
	app.HideBanner = true
	app.Debug = opts.Debug
	app.HTTPErrorHandler = helpers.AppHTTPErrorHandler

	app.Pre(middleware.RemoveTrailingSlash())
	app.Use(middleware.Logger())
	app.Use(middleware.Recover())

	registerRoutes(app, opts)

	return &Server{app: app}
}

func registerRoutes(app *echo.Echo, opts Options) {
	mw := opts.Middlewares

	v1 := app.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", opts.Auth.Login)
	auth.POST("/password-reset", opts.Auth.ResetPassword)
	auth.POST("/register/coach", opts.Auth.RegisterCoach)
	auth.POST("/register/player", opts.Auth.RegisterPlayer)
	auth.POST("/register/junior-player", opts.Auth.RegisterJuniorPlayer)
	auth.POST("/register/non-player-member", opts.Auth.RegisterNonPlayerMember)

	authed := auth.Group("", mw.SessionAuth)
	authed.POST("/logout", opts.Auth.Logout)
	authed.POST("/password-change", opts.Auth.ChangePassword)
	authed.GET("/me", opts.Auth.Me)
	authed.POST("/register/member-assistant", opts.Auth.RegisterMemberAssistant,
		mw.RequireRoles(entity.RoleAdmin))

	api := v1.Group("/api", mw.SessionAuth)

	coachOnly := mw.RequireRoles(entity.RoleCoach)
	assistantOnly := mw.RequireRoles(entity.RoleMemberAssistant)
	schedulerOrCoach := mw.RequireRoles(entity.RoleScheduleAssistant, entity.RoleCoach)

	// users and roster
	api.GET("/users", opts.Auth.ListUsers, mw.RequireRoles(entity.RoleAdmin))
	api.POST("/squads", opts.Roster.CreateSquad, mw.RequireRoles(entity.RoleAdmin))
	api.GET("/squads", opts.Roster.ListSquads)
	api.GET("/squads/:id/members", opts.Roster.SquadMembers)
	api.POST("/squads/:id/players", opts.Roster.AssignPlayer, coachOnly)
	api.DELETE("/squads/:id/players/:playerId", opts.Roster.RemovePlayer, coachOnly)
	api.GET("/players/unassigned", opts.Roster.UnassignedPlayers, coachOnly)

	// training plans and sessions
	api.POST("/training/plans", opts.Training.CreatePlan, coachOnly)
	api.GET("/training/plans", opts.Training.MyPlans, coachOnly)
	api.GET("/training/plans/:id", opts.Training.GetPlan, coachOnly)
	api.PUT("/training/plans/:id", opts.Training.UpdatePlan, coachOnly)
	api.GET("/training/plans/:id/ical", opts.Training.ExportPlanICS, coachOnly)
	api.POST("/training/sessions/:id/attendance", opts.Training.RecordAttendance, coachOnly)
	api.PUT("/training/sessions/:id/status", opts.Training.SetSessionStatus, coachOnly)
	api.GET("/training/upcoming", opts.Report.UpcomingSessions, coachOnly)
	api.GET("/training/history", opts.Report.TrainingHistory, coachOnly)

	// notifications
	api.POST("/notifications/send", opts.Notification.Send, assistantOnly)
	api.GET("/notifications", opts.Notification.Inbox)
	api.GET("/notifications/unread-count", opts.Notification.UnreadCount)
	api.POST("/notifications/:id/read", opts.Notification.MarkRead)

	// games, seasons, venues
	api.POST("/games", opts.Game.CreateGame, schedulerOrCoach)
	api.PUT("/games/:id/result", opts.Game.RecordResult, schedulerOrCoach)
	api.GET("/games/upcoming", opts.Game.Upcoming)
	api.GET("/games/past", opts.Game.Past)
	api.POST("/seasons", opts.Game.CreateSeason, mw.RequireRoles(entity.RoleScheduleAssistant))
	api.GET("/seasons", opts.Game.Seasons)
	api.GET("/seasons/current", opts.Game.CurrentSeason)
	api.POST("/venues", opts.Game.CreateVenue, mw.RequireRoles(entity.RoleScheduleAssistant))
	api.GET("/venues", opts.Game.Venues)

	// skills and reports
	api.POST("/skills", opts.Report.RecordSkillAssessment, coachOnly)
	api.GET("/reports/players/:id/skills", opts.Report.PlayerSkills, coachOnly)
	api.GET("/reports/players/:id/skills/history", opts.Report.PlayerAssessmentHistory, coachOnly)
	api.GET("/reports/players/:id/attendance", opts.Report.PlayerAttendance, coachOnly)
	api.GET("/reports/squads/:id/skills", opts.Report.SquadSkills, coachOnly)
	api.GET("/reports/calendar/:year/:month", opts.Report.MonthCalendar)
}

func (s *Server) Start(address string) error {
	return s.app.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP lets tests drive the server through httptest.
func (s *Server) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	s.app.ServeHTTP(w, r)
}
