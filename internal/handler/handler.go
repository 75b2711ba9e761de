package handler

import (
	"github.com/domi413/worklog/internal/auth"
	"github.com/domi413/worklog/internal/logging"
	"github.com/domi413/worklog/internal/service"
	"golang.org/x/oauth2"
)

type Handler struct {
	userService   service.UserService
	issueService  service.IssueService
	ledgerService service.LedgerService
	timerService  service.TimerService
	reportService service.ReportService
	syncService   service.SyncService
	sessions      *auth.SessionManager
	oauth         *oauth2.Config
	logger        logging.Logger
}

func NewHandler(
	userService service.UserService,
	issueService service.IssueService,
	ledgerService service.LedgerService,
	timerService service.TimerService,
	reportService service.ReportService,
	syncService service.SyncService,
	sessions *auth.SessionManager,
	oauth *oauth2.Config,
	logger logging.Logger,
) *Handler {
	return &Handler{
		userService:   userService,
		issueService:  issueService,
		ledgerService: ledgerService,
		timerService:  timerService,
		reportService: reportService,
		syncService:   syncService,
		sessions:      sessions,
		oauth:         oauth,
		logger:        logger,
	}
}
