package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/core/user"
	emailsvc "github.com/trezcool/tutordesk/services/email"
	logsvc "github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/services/scheduler"
	"github.com/trezcool/tutordesk/storage/database"
)

type SchedulerLoggerParam struct {
	dig.In
	Logger core.Logger `name:"schedLogger"`
}

type serverParams struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	UserSvc    *user.Service
	Gateway    lesson.Gateway
	Sessions   *lesson.Sessions
	MailSvc    core.EmailService
	Validate   *validator.Validate
	Translator ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newSchedulerLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "SCHED : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newGateway(conf *core.Config, logger core.Logger) lesson.Gateway {
	gateway, err := database.OpenGateway(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up %s gateway: %v", conf.Gateway.Kind, err), err)
	}
	return gateway
}

func newScheduler(sessions *lesson.Sessions, loggerParam SchedulerLoggerParam, conf *core.Config) (*scheduler.Scheduler, error) {
	return scheduler.New(sessions, loggerParam.Logger, conf)
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	return emailsvc.NewService(logger, log.New(os.Stdout, "MAIL : ", log.LstdFlags), conf)
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		UserSvc:    p.UserSvc,
		Gateway:    p.Gateway,
		Sessions:   p.Sessions,
		MailSvc:    p.MailSvc,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newSchedulerLogger, dig.Name("schedLogger")))
	must(c.Provide(newGateway))
	must(c.Provide(lesson.NewSessions))
	must(c.Provide(newScheduler))
	must(c.Provide(newEmailService))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(user.NewService))
	must(c.Provide(newServer))

	return c
}

// Fatal exits the program, reporting a failed resolution.
func Fatal(err error) {
	log.Fatal(errors.Wrap(err, "failed to resolve dependency").Error())
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
