package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/services/lessonapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf       *core.Config
	gateway    lesson.Gateway
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  lessons [-month YYYY-MM] [-from YYYY-MM-DD -to YYYY-MM-DD] [-type TYPE] - list lessons")
	_, _ = fmt.Fprintln(cli.out, "  take -id ID [-tutor NAME] - claim an available lesson")
	_, _ = fmt.Fprintln(cli.out, "  export [-out FILE] [-month YYYY-MM] [-from YYYY-MM-DD -to YYYY-MM-DD] - export lessons as iCalendar")
	_, _ = fmt.Fprintln(cli.out, "  login -email EMAIL - log in to the remote gateway; the password is prompted next")
}

// filterFlags registers the lesson filter flags on fs.
func filterFlags(fs *flag.FlagSet) *lesson.FilterRequest {
	fr := new(lesson.FilterRequest)
	fs.StringVar(&fr.Month, "month", "", "Only lessons of this month (YYYY-MM).")
	fs.StringVar(&fr.StartDate, "from", "", "Only lessons from this day (YYYY-MM-DD). Requires -to.")
	fs.StringVar(&fr.EndDate, "to", "", "Only lessons until this day, inclusive (YYYY-MM-DD). Requires -from.")
	return fr
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	lessonsCmd := cli.newFlagSet("lessons")
	lessonsFilters := filterFlags(lessonsCmd)
	lessonsType := lessonsCmd.String("type", "", "Only lessons of this type: "+typeNames()+".")

	takeCmd := cli.newFlagSet("take")
	takeID := takeCmd.String("id", "", "The ID of the lesson to claim.")
	takeTutor := takeCmd.String("tutor", cli.conf.Tutor.Name, "The tutor claiming the lesson.")

	exportCmd := cli.newFlagSet("export")
	exportFilters := filterFlags(exportCmd)
	exportOut := exportCmd.String("out", "-", "The file to write; - writes to stdout.")

	loginCmd := cli.newFlagSet("login")
	loginEmail := loginCmd.String("email", "", "The email to log in with.")

	ctx := context.Background()

	switch args[1] {
	case "lessons":
		if err := lessonsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listLessons(ctx, *lessonsFilters, *lessonsType)

	case "take":
		if err := takeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *takeID == "" || *takeTutor == "" {
			takeCmd.Usage()
			return errHelp
		}
		return cli.takeLesson(ctx, *takeID, *takeTutor)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.export(ctx, *exportFilters, *exportOut)

	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		_, _ = fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		_, _ = fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginEmail, string(pwd))

	default:
		cli.printUsage()
		return errHelp
	}
}

// newStore returns a store of the given tutor, loaded with the gateway's lessons.
func (cli *commandLine) newStore(ctx context.Context, tutor string) (*lesson.Store, error) {
	if client, ok := cli.gateway.(*lessonapi.Client); ok && !client.HasToken() {
		return nil, errors.New("the remote gateway needs a token: run login first")
	}
	store := lesson.NewStore(cli.gateway, tutor)
	if err := store.FetchLessons(ctx); err != nil {
		return nil, errors.New(store.FetchError())
	}
	return store, nil
}

// criteria validates fr and converts it, in the scheduler's timezone.
func (cli *commandLine) criteria(fr lesson.FilterRequest) (lesson.Criteria, error) {
	if err := fr.Validate(cli.validate); err != nil {
		return lesson.Criteria{}, cli.translate(err)
	}
	return fr.Criteria(cli.conf.Scheduler.Location())
}

func (cli *commandLine) translate(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(cli.translator))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func typeNames() string {
	names := make([]string, 0, len(lesson.Types))
	for _, typ := range lesson.Types {
		names = append(names, string(typ))
	}
	return strings.Join(names, ", ")
}
