package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/audit"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/calc"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/config"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/database"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/export"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/freeze"
	freezeStore "github.com/FDCTax/fdctax-core-api-sub002/internal/freeze/store"
	coreHttp "github.com/FDCTax/fdctax-core-api-sub002/internal/http"
	exportHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/export"
	freezeHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/freeze"
	importHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/importcsv"
	jobHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/job"
	queryHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/query"
	txHandler "github.com/FDCTax/fdctax-core-api-sub002/internal/http/transaction"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/importer"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/job"
	jobStore "github.com/FDCTax/fdctax-core-api-sub002/internal/job/store"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/query"
	queryStore "github.com/FDCTax/fdctax-core-api-sub002/internal/query/store"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/rates"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/transaction"
	txStore "github.com/FDCTax/fdctax-core-api-sub002/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	auditSink := audit.NewSlogSink(slog.Default())

	var (
		qStore             = queryStore.New(db)
		transactionService = transaction.NewService(txStore.New(db), auditSink)
		queryService       = query.NewService(qStore, qStore, auditSink)
		jobService         = job.NewService(jobStore.New(db), queryService, transactionService, auditSink)
		calcService        = calc.NewService(jobService, transactionService, calc.NewRegistry(), rates.Default())
		freezeService      = freeze.NewService(freezeStore.New(db), jobService, calcService, transactionService, queryService, auditSink)
		importService      = importer.NewService(transactionService, jobService)
		exportService      = export.NewService(jobService, transactionService, freezeService)
	)

	var (
		jobH    = jobHandler.NewHandler(jobService, calcService)
		txH     = txHandler.NewHandler(transactionService)
		queryH  = queryHandler.NewHandler(queryService)
		freezeH = freezeHandler.NewHandler(freezeService, cfg.Freeze.RequireAllCompleted)
		importH = importHandler.NewHandler(importService)
		exportH = exportHandler.NewHandler(exportService)
	)

	router := coreHttp.New(jobH, txH, queryH, freezeH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
