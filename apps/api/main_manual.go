package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/core/user"
	emailsvc "github.com/trezcool/tutordesk/services/email"
	logsvc "github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/services/scheduler"
	"github.com/trezcool/tutordesk/storage/database"
)

func startManual() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	schedLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "SCHED : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up the lesson gateway
	gateway, err := database.OpenGateway(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up %s gateway: %v", conf.Gateway.Kind, err), err)
	}
	sessions := lesson.NewSessions(gateway)

	sched, err := scheduler.New(sessions, schedLogger, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up scheduler: %v", err), err)
	}

	// set up services
	mailSvc := emailsvc.NewService(logger, log.New(os.Stdout, "MAIL : ", log.LstdFlags), conf)

	validate := validator.New()
	translator := core.NewTranslator()
	initValidators(validate, translator)

	usrSvc := user.NewService(conf, validate)

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			Gateway:    gateway,
			Sessions:   sessions,
			MailSvc:    mailSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	run(conf, logger, sched, server)
}
