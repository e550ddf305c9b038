package main

import (
	"context"
	"errors"
	"fmt"
)

func (cli *commandLine) takeLesson(ctx context.Context, id, tutor string) error {
	store, err := cli.newStore(ctx, tutor)
	if err != nil {
		return err
	}
	taken, err := store.TakeLesson(ctx, id)
	if err != nil {
		return errors.New(store.TakeError())
	}
	_, _ = fmt.Fprintf(cli.out, "%s is now confirmed for %q on %s (%s).\n",
		taken.Tutor, taken.Subject, taken.Date.In(cli.conf.Scheduler.Location()).Format(listDateLayout), taken.Type(),
	)
	return nil
}
