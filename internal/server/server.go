package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/deanmoses/flipfix/internal/cache"
	"github.com/deanmoses/flipfix/internal/compress"
	"github.com/deanmoses/flipfix/internal/config"
	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/jobs"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/service"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Server represents the server
type Server struct {
	httpPort string
}

// NewServer creates a new server
func NewServer(httpPort string) *Server {
	return &Server{
		httpPort: httpPort,
	}
}

// Start starts the server
func (s *Server) Start() {
	if err := Start(s.httpPort); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// Start starts the http server and the background jobs
func Start(httpPort string) error {
	httpPort = ":" + httpPort

	cnf := config.LoadConfig()
	db, err := config.GetDB(cnf)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", httpPort)
	if err != nil {
		return err
	}

	recordStore := store.NewGormStore(db)
	if err := recordStore.Migrate(); err != nil {
		return err
	}

	registry := links.DefaultRegistry()
	engine := links.NewEngine(registry, store.NewLinkResolver(recordStore))

	var rendered *cache.Cache
	if cnf.RedisAddr != "" {
		rendered, err = cache.NewRedis(cnf.RedisAddr)
		if err != nil {
			return err
		}
	}

	var publisher events.Publisher = events.NewNop()
	if cnf.KafkaBrokers != "" {
		publisher, err = events.NewKafkaPublisher(cnf.KafkaBrokers, cnf.KafkaTopic)
		if err != nil {
			return err
		}
	}
	defer publisher.Close()

	handler := &Handler{
		store:     recordStore,
		engine:    engine,
		baseURL:   cnf.BaseURL,
		wiki:      service.NewWikiService(recordStore, engine, rendered, compress.Named(cnf.Compression), publisher),
		problems:  service.NewProblemService(recordStore, engine, publisher),
		logs:      service.NewLogService(recordStore, engine, publisher),
		parts:     service.NewPartService(recordStore, engine, publisher),
		backlinks: service.NewBacklinkService(recordStore, engine, registry),
	}

	executor := jobs.NewTaskExecutor([]jobs.CronJob{
		jobs.NewReferenceAudit(cnf.AuditSchedule, recordStore, engine),
	})
	executor.Run()
	defer executor.Stop()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // All origins are allowed
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PUT", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	restServer := &http.Server{
		Addr:    httpPort,
		Handler: c.Handler(requestTimeMiddleware(handler.Routes())),
	}

	// make sure to wait for the server to stop before exiting
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logrus.Info("starting flipfix api on: ", httpPort)
		if err := restServer.Serve(listener); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("error starting api server: %v", err)
			}
		}
		logrus.Infof("api server stopped")
	}()

	time.Sleep(1 * time.Second)
	logrus.Infof("Press Ctrl+C to stop the server")

	// listen for interrupt signal to gracefully shut down the server
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGTERM, unix.SIGINT, unix.SIGTSTP)
	<-sigs
	// clean Ctrl+C output
	fmt.Println()

	if err := restServer.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error stopping api server: %v", err)
	}

	wg.Wait()

	return nil
}
