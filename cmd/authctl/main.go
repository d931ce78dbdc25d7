// Command authctl talks to a running auth service over HTTP.
//
// Usage:
//
//	authctl [-addr host:port] [-timeout 10s] login -u admin -p admin123
//	authctl [-addr host:port] -token <jwt> users
//	authctl [-addr host:port] health
//	authctl [-addr host:port] version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	log := logger.NewLogger("authctl")
	if err := log.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, "authctl:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("authctl", flag.ContinueOnError)
	addr := fs.String("addr", "localhost:8000", "auth service address")
	token := fs.String("token", os.Getenv("AUTH_TOKEN"), "bearer token for protected commands")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("%w: expected one of login, users, health, version", errUnknownCommand)
	}

	client, err := adapter.NewHTTPServerAdapter(*addr, *timeout, log)
	if err != nil {
		return err
	}
	client.SetToken(*token)

	ctx := context.Background()
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "login":
		return login(ctx, client, cmdArgs, out)
	case "users":
		users, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Fprintln(out, u)
		}
		return nil
	case "health":
		status, err := client.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, status)
		return nil
	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, version)
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}
}

func login(ctx context.Context, client adapter.ServerAdapter, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := client.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token.SignedString)
	return nil
}
