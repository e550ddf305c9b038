package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/trezcool/tutordesk/core/user"
	"github.com/trezcool/tutordesk/services/lessonapi"
)

var errLocalGateway = errors.New("login is only needed by the http gateway")

// login prints the token to set as the gateway token of subsequent runs.
func (cli *commandLine) login(ctx context.Context, email, pwd string) error {
	client, ok := cli.gateway.(*lessonapi.Client)
	if !ok {
		return errLocalGateway
	}
	res, err := client.Login(ctx, user.Credentials{Email: email, Password: pwd})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "Logged in as %s <%s>.\n", res.User.Name, res.User.Email)
	_, _ = fmt.Fprintf(cli.out, "Token: %s\n", res.Token)
	return nil
}
