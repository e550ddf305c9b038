package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/trezcool/tutordesk/core/lesson"
)

const listDateLayout = "Mon 02 Jan 2006 15:04"

func (cli *commandLine) listLessons(ctx context.Context, fr lesson.FilterRequest, typ string) error {
	criteria, err := cli.criteria(fr)
	if err != nil {
		return err
	}
	var lType lesson.Type
	if typ != "" {
		var ok bool
		if lType, ok = lesson.ParseType(typ); !ok {
			return fmt.Errorf("unknown lesson type %q; expected one of %s", typ, typeNames())
		}
	}

	store, err := cli.newStore(ctx, cli.conf.Tutor.Name)
	if err != nil {
		return err
	}
	store.SetCriteria(criteria)

	lessons := store.FilteredLessons()
	if lType != "" {
		lessons = store.LessonsByType(lType)
	}
	if len(lessons) == 0 {
		_, _ = fmt.Fprintln(cli.out, "No lessons found.")
		return nil
	}

	loc := cli.conf.Scheduler.Location()
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDATE\tTYPE\tSTATUS\tSUBJECT\tSTUDENTS\tTUTOR")
	for _, l := range lessons {
		tutor := l.Tutor
		if !l.HasTutor() {
			tutor = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Date.In(loc).Format(listDateLayout), l.Type(), l.Status, l.Subject, strings.Join(l.Students, ", "), tutor,
		)
	}
	return w.Flush()
}
