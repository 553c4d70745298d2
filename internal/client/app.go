package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/config"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/service"
	"github.com/MKhiriev/zero-vault/internal/session"
	"github.com/MKhiriev/zero-vault/models"
)

const logRole = "zero-vault-client"

type App struct {
	buildInfo models.AppBuildInfo

	// overrides is filled by the persistent flags of the root command.
	overrides config.StructuredConfig

	cfg      *config.ClientConfig
	session  *session.MasterPasswordSession
	services *service.ClientServices

	prompter  Prompter
	clipboard Clipboard
	in        io.Reader
	out       io.Writer
	errOut    io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

type Option func(*App)

// WithIO replaces stdin, stdout and stderr. Prompts go to errOut so that
// stdout carries only command output.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithServices skips building the services from configuration.
func WithServices(services *service.ClientServices, cfg *config.ClientConfig) Option {
	return func(a *App) {
		a.services = services
		a.cfg = cfg
	}
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		session:   session.New(),
		clipboard: systemClipboard{},
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.prompter = NewPrompter(a.in, a.errOut)
	return a
}

// Run executes one command line. The session is cleared before returning.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.session.Clear()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		a.printError(err)
		return err
	}
	return nil
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zero-vault",
		Short: "Zero-knowledge secret vault client",
		Long: "zero-vault encrypts secrets on this machine with a key derived from your\n" +
			"master password. The server only ever stores ciphertext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.logger.Debug().Str("command", cmd.Name()).Msg("command finished")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.overrides.Adapter.HTTPAddress, "server", "s", "", "vault server address (env ADAPTER_ADDRESS)")
	flags.StringVarP(&a.overrides.JSONFilePath, "config", "c", "", "JSON config file (env CONFIG)")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "timeout", 0, "server request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	flags.StringVar(&a.overrides.App.LogLevel, "log-level", "", "log level of the client log file (env APP_LOG_LEVEL)")

	root.AddCommand(
		a.listCommand(),
		a.createCommand(),
		a.revealCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.versionCommand(),
		a.shellCommand(),
	)
	return root
}

// connect builds the client services from configuration on first use.
func (a *App) connect() error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(&a.overrides)
	if err != nil {
		return fmt.Errorf("load client config: %w", err)
	}

	a.logger = logger.NewClientLogger(logRole, cfg.App.LogDir)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	params := crypto.DefaultParams()
	params.SaltEncoding = cfg.Crypto.SaltEncoding
	engine, err := crypto.NewEngine(crypto.NewPlatformProvider(), params)
	if err != nil {
		return fmt.Errorf("create crypto engine: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	a.cfg = cfg
	a.services = service.NewClientServices(serverAdapter, engine, a.session, a.logger)
	a.logger.Info().
		Str("server", cfg.Adapter.HTTPAddress).
		Str("salt_encoding", cfg.Crypto.SaltEncoding.String()).
		Msg("client connected")
	return nil
}

// unlock asks for the master password when the session holds none. For a
// new secret the password must pass the policy and is asked twice.
func (a *App) unlock(forNewSecret bool) error {
	if a.session.Unlocked() {
		return nil
	}

	password, err := a.prompter.Password("Master password: ")
	if err != nil {
		return err
	}

	if forNewSecret {
		strength, err := session.CheckPolicy(password)
		if err != nil {
			return err
		}
		if strength.Weak() {
			a.warn("weak master password, estimated crack time %s", strength.CrackTime)
		}

		repeat, err := a.prompter.Password("Repeat master password: ")
		if err != nil {
			return err
		}
		if repeat != password {
			return ErrPasswordMismatch
		}
	}

	return a.session.Set(password)
}
