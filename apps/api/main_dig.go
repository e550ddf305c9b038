package main

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	dig_container "github.com/trezcool/tutordesk/apps/api/di/dig"
	echoapi "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/services/scheduler"
)

func startWithDig() {
	c := dig_container.New()

	must(c.Invoke(func(validate *validator.Validate, translator ut.Translator) {
		initValidators(validate, translator)
	}))

	must(c.Invoke(func(
		conf *core.Config,
		apiLogger core.Logger,
		sched *scheduler.Scheduler,
		server *echoapi.Server,
	) {
		run(conf, apiLogger, sched, server)
	}))
}

func must(err error) {
	if err != nil {
		dig_container.Fatal(err)
	}
}
