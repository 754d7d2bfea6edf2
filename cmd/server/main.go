package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"holdemtable-server/internal/config"
	"holdemtable-server/internal/mux"
	"holdemtable-server/pkg/db"
	"holdemtable-server/pkg/room"
	"holdemtable-server/pkg/store"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	var tableStore store.TableStore
	switch cfg.Storage {
	case "postgres":
		db.LoadInstance(cfg.PGDSN)
		db.Migrate(cfg.MigrationsPath)
		tableStore = store.NewPostgres(db.Instance())
	case "memory":
		logrus.Warn("using in-memory storage; tables will not survive a restart")
		tableStore = store.NewMemory()
	default:
		logrus.WithField("storage", cfg.Storage).Fatal("unknown storage backend")
	}

	floor := room.NewFloor(time.Duration(cfg.HeartbeatSeconds) * time.Second)
	floor.Open()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, tableStore, floor))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
