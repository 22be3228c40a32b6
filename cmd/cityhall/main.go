// Command cityhall is a small terminal client for a City Hall configuration
// service: it reads and writes values, inspects their history and children,
// and manages environments, users and rights.
//
// Connection settings come from flags, CITYHALL_* environment variables, or
// a JSON config file; see the config package. Usage:
//
//	cityhall [connection flags] <command> [command flags] [args]
//
// Commands: get, set, protect, delete, history, children, env, env-create,
// default-env, user, user-create, user-delete, passwd, grant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/atotto/clipboard"

	cityhall "github.com/cityhall/go-cityhall"
	"github.com/cityhall/go-cityhall/internal/config"
	"github.com/cityhall/go-cityhall/internal/logger"
	"github.com/cityhall/go-cityhall/models"
)

var (
	buildVersion string
	buildDate    string
)

func main() {
	log := logger.NewFileLogger("cityhall")

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, "cityhall:", err)
		os.Exit(2)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	if args[0] == "version" {
		fmt.Printf("cityhall %s (%s)\n", orNA(buildVersion), orNA(buildDate))
		return
	}

	ctx := context.Background()

	session, err := cityhall.New(ctx, cfg.URL, cfg.User, cfg.Password,
		cityhall.WithTimeout(cfg.RequestTimeout),
		cityhall.WithLogger(log.Logger))
	if err != nil {
		log.Error().Err(err).Str("url", cfg.URL).Str("user", cfg.User).Msg("login failed")
		fmt.Fprintln(os.Stderr, "cityhall:", err)
		os.Exit(1)
	}
	defer func() {
		if err := session.Logout(ctx); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
	}()

	if err := run(ctx, session, args); err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("command failed")
		fmt.Fprintln(os.Stderr, "cityhall:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, session *cityhall.Session, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "get":
		return cmdGet(ctx, session, rest)
	case "set":
		return cmdSet(ctx, session, rest)
	case "protect":
		return cmdProtect(ctx, session, rest)
	case "delete":
		return cmdDelete(ctx, session, rest)
	case "history":
		return cmdHistory(ctx, session, rest)
	case "children":
		return cmdChildren(ctx, session, rest)
	case "env":
		return cmdEnv(ctx, session, rest)
	case "env-create":
		return cmdEnvCreate(ctx, session, rest)
	case "default-env":
		return cmdDefaultEnv(ctx, session, rest)
	case "user":
		return cmdUser(ctx, session, rest)
	case "user-create":
		return cmdUserCreate(ctx, session, rest)
	case "user-delete":
		return cmdUserDelete(ctx, session, rest)
	case "passwd":
		return cmdPasswd(ctx, session, rest)
	case "grant":
		return cmdGrant(ctx, session, rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// valueFlags are the flags shared by the value commands. The override flag
// is three-valued: not passing it, passing -override= (the unconditional
// default) and passing -override=name are three different requests.
type valueFlags struct {
	fs   *flag.FlagSet
	env  *string
	over *string
}

func newValueFlags(name string) *valueFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &valueFlags{
		fs:   fs,
		env:  fs.String("env", "", "environment (defaults to the user's default environment)"),
		over: fs.String("override", "", "override name; pass -override= for the unconditional default"),
	}
}

func (f *valueFlags) parse(args []string) []string {
	_ = f.fs.Parse(args)
	return f.fs.Args()
}

func (f *valueFlags) override() cityhall.Override {
	over := cityhall.Override{}
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "override" {
			over = cityhall.Over(*f.over)
		}
	})
	return over
}

func cmdGet(ctx context.Context, session *cityhall.Session, args []string) error {
	flags := newValueFlags("get")
	copyFlag := flags.fs.Bool("copy", false, "copy the value to the clipboard instead of printing it")
	rest := flags.parse(args)
	if len(rest) != 1 {
		return fmt.Errorf("usage: cityhall get [-env e] [-override o] [-copy] <path>")
	}

	value, err := session.Values.Get(ctx, rest[0], *flags.env, flags.override())
	if err != nil {
		return err
	}

	if *copyFlag {
		return clipboard.WriteAll(value)
	}
	fmt.Println(value)
	return nil
}

func cmdSet(ctx context.Context, session *cityhall.Session, args []string) error {
	flags := newValueFlags("set")
	rest := flags.parse(args)
	if len(rest) != 2 {
		return fmt.Errorf("usage: cityhall set [-env e] [-override o] <path> <value>")
	}

	return session.Values.Set(ctx, *flags.env, rest[0], rest[1], flags.override())
}

func cmdProtect(ctx context.Context, session *cityhall.Session, args []string) error {
	flags := newValueFlags("protect")
	rest := flags.parse(args)
	if len(rest) != 2 {
		return fmt.Errorf("usage: cityhall protect [-env e] [-override o] <path> <true|false>")
	}

	protect, err := strconv.ParseBool(rest[1])
	if err != nil {
		return fmt.Errorf("bad protect flag %q: %w", rest[1], err)
	}
	return session.Values.SetProtect(ctx, *flags.env, rest[0], protect, flags.override())
}

func cmdDelete(ctx context.Context, session *cityhall.Session, args []string) error {
	flags := newValueFlags("delete")
	rest := flags.parse(args)
	if len(rest) != 1 {
		return fmt.Errorf("usage: cityhall delete [-env e] [-override o] <path>")
	}

	return session.Values.Delete(ctx, *flags.env, rest[0], flags.override())
}

func cmdHistory(ctx context.Context, session *cityhall.Session, args []string) error {
	flags := newValueFlags("history")
	rest := flags.parse(args)
	if len(rest) != 1 {
		return fmt.Errorf("usage: cityhall history [-env e] [-override o] <path>")
	}

	history, err := session.Values.GetHistory(ctx, rest[0], *flags.env, flags.override())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tAUTHOR\tOVERRIDE\tACTIVE\tPROTECT\tVALUE")
	for _, e := range history.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Author, e.Override, e.Active, e.Protect, e.Value)
	}
	return w.Flush()
}

func cmdChildren(ctx context.Context, session *cityhall.Session, args []string) error {
	fs := flag.NewFlagSet("children", flag.ExitOnError)
	env := fs.String("env", "", "environment (defaults to the user's default environment)")
	_ = fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: cityhall children [-env e] <path>")
	}

	children, err := session.Values.GetChildren(ctx, rest[0], *env)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tOVERRIDE\tPROTECT\tVALUE")
	for _, c := range children.Children {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", c.Path, c.Override, c.Protect, c.Value)
	}
	return w.Flush()
}

func cmdEnv(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cityhall env <name>")
	}

	info, err := session.Environments.Get(ctx, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tRIGHTS")
	for _, r := range info.Rights {
		fmt.Fprintf(w, "%s\t%s\n", r.User, r.Rights)
	}
	return w.Flush()
}

func cmdEnvCreate(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cityhall env-create <name>")
	}
	return session.Environments.Create(ctx, args[0])
}

func cmdDefaultEnv(ctx context.Context, session *cityhall.Session, args []string) error {
	switch len(args) {
	case 0:
		fmt.Println(session.Environments.Default())
		return nil
	case 1:
		return session.Environments.SetDefault(ctx, args[0])
	default:
		return fmt.Errorf("usage: cityhall default-env [name]")
	}
}

func cmdUser(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cityhall user <name>")
	}

	info, err := session.Users.Get(ctx, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENVIRONMENT\tRIGHTS")
	for _, p := range info.Permissions {
		fmt.Fprintf(w, "%s\t%s\n", p.Environment, p.Rights)
	}
	return w.Flush()
}

func cmdUserCreate(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: cityhall user-create <name> <password>")
	}
	return session.Users.Create(ctx, args[0], args[1])
}

func cmdUserDelete(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cityhall user-delete <name>")
	}
	return session.Users.Delete(ctx, args[0])
}

func cmdPasswd(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cityhall passwd <new-password>")
	}
	return session.Users.UpdatePassword(ctx, args[0])
}

func cmdGrant(ctx context.Context, session *cityhall.Session, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: cityhall grant <user> <environment> <none|read|read-protected|write|grant>")
	}

	rights, err := models.ParseRights(args[2])
	if err != nil {
		return err
	}
	return session.Users.Grant(ctx, args[0], args[1], rights)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cityhall [connection flags] <command> [command flags] [args]

commands:
  get [-env e] [-override o] [-copy] <path>
  set [-env e] [-override o] <path> <value>
  protect [-env e] [-override o] <path> <true|false>
  delete [-env e] [-override o] <path>
  history [-env e] [-override o] <path>
  children [-env e] <path>
  env <name>
  env-create <name>
  default-env [name]
  user <name>
  user-create <name> <password>
  user-delete <name>
  passwd <new-password>
  grant <user> <environment> <rights>
  version

connection flags: -url, -u, -p, -c/-config, -request-timeout (see also
CITYHALL_URL, CITYHALL_USER, CITYHALL_PASSWORD, CITYHALL_CONFIG).`)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
