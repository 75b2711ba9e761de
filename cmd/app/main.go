package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/domi413/worklog/internal/auth"
	"github.com/domi413/worklog/internal/config"
	"github.com/domi413/worklog/internal/db"
	"github.com/domi413/worklog/internal/github"
	"github.com/domi413/worklog/internal/handler"
	"github.com/domi413/worklog/internal/handler/server"
	"github.com/domi413/worklog/internal/logging"
	"github.com/domi413/worklog/internal/repository/postgres"
	"github.com/domi413/worklog/internal/scheduler"
	"github.com/domi413/worklog/internal/service"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

func main() {
	cfg := config.Load()
	logger := logging.NewDefault()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	ctx := context.Background()
	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	issueRepo := postgres.NewIssueRepository(database)
	timeEntryRepo := postgres.NewTimeEntryRepository(database)
	timerRepo := postgres.NewTimerRepository(database)

	ghClient := github.NewClient(cfg.GitHub.Token)

	userService := service.NewUserService(userRepo, cfg.Auth.AllowedUsers)
	issueService := service.NewIssueService(issueRepo, projectRepo)
	ledgerService := service.NewLedgerService(timeEntryRepo, issueRepo)
	timerService := service.NewTimerService(timerRepo, issueRepo, ledgerService)
	reportService := service.NewReportService(ledgerService)
	syncService := service.NewSyncService(ghClient, projectRepo, issueRepo, cfg.Sync.Repos, logger)

	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret)
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GitHub.OAuthClientID,
		ClientSecret: cfg.GitHub.OAuthClientSecret,
		RedirectURL:  cfg.GitHub.OAuthRedirectURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     githuboauth.Endpoint,
	}

	h := handler.NewHandler(
		userService,
		issueService,
		ledgerService,
		timerService,
		reportService,
		syncService,
		sessions,
		oauthConfig,
		logger,
	)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	sched := scheduler.New(syncService, cfg.Sync.Interval, logger)
	sched.Start()

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
