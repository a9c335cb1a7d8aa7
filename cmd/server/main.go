/*
main.go - Application entry point

STARTUP SEQUENCE:
  1. Load environment config (.env honored), parse flag overrides
  2. Open the report store (json file or sqlite, per STORE_BACKEND)
  3. Wire the attendance source, engine, and HTTP handler
  4. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP port (overrides PORT)
  -records  attendance JSON export path (overrides ATTENDANCE_RECORDS_PATH)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for active
  requests, close the store, exit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shakedr2/salary-tracker/api"
	"github.com/shakedr2/salary-tracker/attendance"
	"github.com/shakedr2/salary-tracker/internal/config"
	"github.com/shakedr2/salary-tracker/payroll"
	"github.com/shakedr2/salary-tracker/store"
	"github.com/shakedr2/salary-tracker/store/jsonfile"
	"github.com/shakedr2/salary-tracker/store/sqlite"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "HTTP server port")
	recordsPath := flag.String("records", cfg.RecordsPath, "attendance JSON export path")
	flag.Parse()

	st, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize report store")
	}
	defer st.Close()

	calc := payroll.NewCalculator(cfg.PayrollConfig())
	calc.Log = log

	source := attendance.NewFileSource(*recordsPath)
	handler := api.NewHandler(calc, source, st, log)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":  *port,
			"store": cfg.StoreBackend,
		}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server stopped")
}

// openStore picks the persistence backend. The json file suits a single-user
// deployment; sqlite adds report history.
func openStore(cfg *config.Config) (store.ReportStore, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		return sqlite.New(cfg.SQLitePath)
	case config.StoreJSONFile:
		return jsonfile.New(cfg.JSONPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
