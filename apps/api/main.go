package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/ethiopulse/backend/apps/api/echo"
	"github.com/ethiopulse/backend/core"
	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/chat"
	"github.com/ethiopulse/backend/core/user"
	dummysvc "github.com/ethiopulse/backend/services/assistant/dummy"
	geminisvc "github.com/ethiopulse/backend/services/assistant/gemini"
	emailsvc "github.com/ethiopulse/backend/services/email"
	logsvc "github.com/ethiopulse/backend/services/logger"
	inmemdb "github.com/ethiopulse/backend/storage/database/inmem"
)

const assistantPersona = "You are EthioPulse's study assistant for Ethiopian secondary school students. " +
	"Answer clearly and concisely, and relate examples to the Ethiopian national curriculum where possible."

func main() {
	conf := core.NewConfig()

	// set up logger
	var logger core.Logger
	if conf.Debug || conf.TestMode {
		logger = logsvc.NewStdLogger(nil)
	} else {
		logger = logsvc.NewRollbarLogger(nil, conf)
	}

	// set up DB
	db, err := inmemdb.Open()
	errAndDie(err)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(conf, inmemdb.NewUserRepository(db), mailSvc)
	catSvc := catalog.NewService(inmemdb.NewCatalogRepository(db))

	var aiSvc core.AssistantService
	if conf.Gemini.APIKey != "" {
		aiSvc = geminisvc.NewService(conf, assistantPersona)
	} else {
		logger.Warn("no Gemini API key configured; serving canned assistant answers")
		aiSvc = dummysvc.NewService("")
	}

	relay := chat.NewRelay(logger)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	addr := fmt.Sprintf("%s:%s", conf.Server.Host, conf.Server.Port)
	app := echoapi.NewServer(addr, shutdown, &echoapi.Deps{
		Conf:         conf,
		Logger:       logger,
		UserSvc:      usrSvc,
		CatalogSvc:   catSvc,
		AssistantSvc: aiSvc,
		Relay:        relay,
	})

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("api server listening on " + addr)
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		errAndDie(err)
	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("received %v; shutting down", sig))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			logger.Error("graceful shutdown failed", err)
		}
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
