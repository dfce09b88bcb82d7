package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"microloan-backend/internal/adapter/repository/mysql"
	"microloan-backend/internal/config"
	"microloan-backend/internal/infrastructure/db"
	"microloan-backend/internal/infrastructure/logger"
	"microloan-backend/internal/notify"
	ucSweep "microloan-backend/internal/usecase/sweep"
)

// One-shot overdue-reminder job, meant to run from cron or a scheduler.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect failed", zap.Error(err))
	}

	borrowers := mysql.NewBorrowerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	sink := mysql.NewAuditSink(gdb, zlog)

	var sender notify.Sender = &notify.LogSender{Log: zlog}
	if cfg.EmailEnabled {
		s, err := notify.NewSESSender(context.Background(), cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			zlog.Fatal("ses client failed", zap.Error(err))
		}
		sender = s
	}
	dispatcher := notify.NewDispatcher(sender, zlog, 256)
	dispatcher.Start()

	uc := ucSweep.NewUsecase(loans, payments, borrowers, sink, dispatcher, zlog)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	res, err := uc.Run(ctx)
	// drain queued reminders before exiting
	dispatcher.Close()
	if err != nil {
		zlog.Fatal("sweep failed", zap.Error(err))
	}
	zlog.Info("sweep done",
		zap.Int("scanned", res.Scanned),
		zap.Int("notified", res.Notified),
		zap.Int("skipped", res.Skipped))
}
