package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaganjakhotiya/ross/internal/cache"
	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/config"
	"github.com/gaganjakhotiya/ross/internal/db"
	"github.com/gaganjakhotiya/ross/internal/handler"
	"github.com/gaganjakhotiya/ross/internal/handler/server"
	"github.com/gaganjakhotiya/ross/internal/logging"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
	"github.com/gaganjakhotiya/ross/internal/repository/postgres"
	"github.com/gaganjakhotiya/ross/internal/repository/sheets"
	"github.com/gaganjakhotiya/ross/internal/service"
	"github.com/gaganjakhotiya/ross/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	closeLog, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		slog.Error("Failed to set up logging", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open spreadsheet", slog.Any("error", err))
		os.Exit(1)
	}

	templateStart, _ := calendar.ParseDate(cfg.Calendar.TemplateStart)
	if err := sheets.Bootstrap(ctx, st, templateStart, cfg.Calendar.TemplateDays); err != nil {
		slog.Error("Failed to bootstrap spreadsheet", slog.Any("error", err))
		os.Exit(1)
	}

	queueOpts := []queue.Option{
		queue.WithInterval(cfg.Queue.TickInterval),
		queue.WithTaskTimeout(cfg.Queue.TaskTimeout),
	}

	var deadLetterRepo repository.DeadLetterRepository
	if cfg.Database.Enabled {
		database, err := db.NewPostgres(ctx, cfg)
		if err != nil {
			slog.Error("Failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer database.Close()
		slog.Info("Successfully connected to database!")

		deadLetterRepo = postgres.NewDeadLetterRepository(database)
		queueOpts = append(queueOpts, queue.WithFailureHandler(service.NewDeadLetterHandler(deadLetterRepo)))
	}

	teamRepo := sheets.NewTeamRepository(st)
	memberRepo := sheets.NewMemberRepository(st)
	sprintRepo := sheets.NewSprintRepository(st)
	calendarRepo := sheets.NewCalendarRepository(st)

	memo := cache.New(cfg.Cache.ShortTTL, cfg.Cache.LongTTL)
	go memo.Janitor(ctx, cfg.Cache.SweepInterval)

	reads, err := service.NewReads(memo, calendar.NewIndex(st, templateStart), teamRepo, memberRepo, sprintRepo, calendarRepo)
	if err != nil {
		slog.Error("Failed to register cached reads", slog.Any("error", err))
		os.Exit(1)
	}

	writeQueue := queue.New(queueOpts...)
	go writeQueue.Run(ctx)

	teamService := service.NewTeamService(reads, writeQueue, teamRepo, calendarRepo)
	memberService := service.NewMemberService(reads, writeQueue, memberRepo)
	attendanceService := service.NewAttendanceService(reads, writeQueue, teamRepo, calendarRepo)
	sprintService := service.NewSprintService(reads)
	reminderService := service.NewReminderService(reads, writeQueue, teamRepo, calendarRepo)

	scheduler := service.NewSchedulerService(reads, reminderService, cfg.Scheduler.Interval, cfg.Scheduler.Enabled)
	go scheduler.Run(ctx)

	h := handler.NewHandler(teamService, memberService, attendanceService, sprintService, reminderService, scheduler, writeQueue, deadLetterRepo)
	srv := server.NewServer(h, ":"+cfg.Port)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	if err := writeQueue.Shutdown(shutdownCtx); err != nil {
		slog.Error("Write queue forced to shutdown", slog.Any("error", err))
	}
}

// openStore - пустой SPREADSHEET_ID включает документ в памяти
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		slog.Warn("SPREADSHEET_ID is not set, using in-memory spreadsheet")
		return store.NewMemoryStore(), nil
	}
	return store.NewSheetsStore(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
}
