package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "microloan-backend/internal/adapter/http"
	"microloan-backend/internal/adapter/middleware"
	"microloan-backend/internal/adapter/repository/mysql"
	"microloan-backend/internal/config"
	"microloan-backend/internal/infrastructure/cache"
	"microloan-backend/internal/infrastructure/db"
	"microloan-backend/internal/infrastructure/logger"
	"microloan-backend/internal/notify"
	ucApplication "microloan-backend/internal/usecase/application"
	ucBorrower "microloan-backend/internal/usecase/borrower"
	ucLoan "microloan-backend/internal/usecase/loan"
	ucPayment "microloan-backend/internal/usecase/payment"
	ucReport "microloan-backend/internal/usecase/report"
)

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
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}

	borrowers := mysql.NewBorrowerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	unit := mysql.NewGormUoW(gdb)
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
	defer dispatcher.Close()

	borrowerUC := ucBorrower.NewUsecase(borrowers, loans, payments)
	loanUC := ucLoan.NewUsecase(loans, borrowers, payments, sink)
	paymentUC := ucPayment.NewUsecase(payments, loans, unit, sink, zlog)
	applicationUC := ucApplication.NewUsecase(apps, unit, sink, dispatcher, zlog)
	reportUC := ucReport.NewUsecase(loans, payments)

	h := httpadp.NewHandler()
	bh := httpadp.NewBorrowerHandler(borrowerUC)
	lh := httpadp.NewLoanHandler(loanUC)
	ph := httpadp.NewPaymentHandler(paymentUC)
	ah := httpadp.NewApplicationHandler(applicationUC)
	rh := httpadp.NewReportHandler(reportUC)
	auh := httpadp.NewAuditHandler(sink)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, zlog))

	api.POST("/borrowers", bh.CreateBorrower)
	api.GET("/borrowers", bh.ListBorrowers)
	api.GET("/borrowers/:borrower_id", bh.GetBorrower)
	api.PUT("/borrowers/:borrower_id", bh.UpdateBorrower)
	api.DELETE("/borrowers/:borrower_id", bh.DeleteBorrower)

	api.POST("/loans", lh.CreateLoan)
	api.GET("/loans", lh.ListLoans)
	api.GET("/loans/:loan_id", lh.GetLoan)
	api.PUT("/loans/:loan_id", lh.UpdateLoan)
	api.DELETE("/loans/:loan_id", lh.DeleteLoan)

	api.POST("/payments", ph.CreatePayment)
	api.GET("/payments", ph.ListPayments)
	api.GET("/payments/:payment_id", ph.GetPayment)
	api.PUT("/payments/:payment_id", ph.UpdatePayment)
	api.DELETE("/payments/:payment_id", ph.DeletePayment)

	api.POST("/applications", ah.SubmitApplication)
	api.GET("/applications", ah.ListApplications)
	api.GET("/applications/:application_id", ah.GetApplication)
	api.PATCH("/applications/:application_id", ah.ApplyEvent)

	api.GET("/reports/summary", rh.PortfolioSummary)
	api.GET("/reports/monthly", rh.MonthlyReport)
	api.GET("/audit-logs", auh.ListAuditLogs)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
