package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/lesson"
)

func (cli *commandLine) export(ctx context.Context, fr lesson.FilterRequest, out string) error {
	criteria, err := cli.criteria(fr)
	if err != nil {
		return err
	}
	store, err := cli.newStore(ctx, cli.conf.Tutor.Name)
	if err != nil {
		return err
	}
	store.SetCriteria(criteria)

	lessons := store.FilteredLessons()
	cal := lesson.Calendar(lessons, lesson.CalendarOptions{
		Name:      store.Tutor() + " - " + cli.conf.AppName,
		UIDDomain: cli.conf.Server.Host,
	}, lesson.NowFunc())

	if out == "" || out == "-" {
		_, err = fmt.Fprint(cli.out, cal)
		return err
	}
	if err = os.WriteFile(out, []byte(cal), 0o644); err != nil {
		return errors.Wrap(err, "writing calendar")
	}
	_, _ = fmt.Fprintf(cli.out, "%d lessons exported to %s\n", len(lessons), out)
	return nil
}
