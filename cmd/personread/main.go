// Command personread reads a "name,surname" record from a file and prints it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/hatsunemiku3939/personread"
	"github.com/hatsunemiku3939/personread/internal/config"
	"github.com/hatsunemiku3939/personread/internal/logging"
	"github.com/hatsunemiku3939/personread/policy"
)

// exitUsage is returned when personread cannot start: bad flags or configuration.
const exitUsage = 2

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := policy.ExitOK
	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(stderr, "hint: %s\n", hint)
		}
		return exitUsage
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "personread [path]",
		Short: "Read a name,surname record from a file",
		Long: `personread loads a file, decodes it as UTF-8 and splits it into a name
and a surname. On success the record is printed to stdout; otherwise a single
error line naming the failing stage is printed to stderr.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("path", args[0])
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON, stderr)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			exitPolicy, err := policy.ByName(cfg.ExitPolicy)
			if err != nil {
				return errors.Wrap(err, "failed to select exit policy")
			}

			pipeline := personread.NewPipeline(personread.WithLogger(logger))
			person, readErr := pipeline.Read(cmd.Context(), cfg.Path)

			kind := personread.NewReporter(stdout, stderr).Report(person, readErr)
			result := exitPolicy.Decide(cmd.Context(), kind, readErr, policy.Result{ExitCode: policy.ExitOK})
			*code = result.ExitCode
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "path to a TOML configuration file")
	flags.String("path", config.DefaultPath, "file containing the name,surname record")
	flags.String("exit-policy", policy.NameStrict, "exit code policy on failure: strict or legacy")
	flags.String("log-level", "warn", "diagnostic log level: debug, info, warn or error")
	flags.Bool("log-json", false, "emit diagnostic logs as JSON")

	_ = v.BindPFlag("path", flags.Lookup("path"))
	_ = v.BindPFlag("exit_policy", flags.Lookup("exit-policy"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.json", flags.Lookup("log-json"))

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
