package client

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/MKhiriev/zero-vault/internal/service"
)

func (a *App) success(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintf(a.errOut, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, args...))
}

func (a *App) printError(err error) {
	fmt.Fprintf(a.errOut, "%s %s\n", color.RedString("✗"), service.UserMessage(err))
}

// withSpinner runs fn while a spinner turns on stderr. Without a terminal
// fn just runs.
func (a *App) withSpinner(suffix string, fn func() error) error {
	f, ok := a.errOut.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(f),
		spinner.WithSuffix(" "+suffix),
	)
	s.Start()
	defer s.Stop()

	return fn()
}
