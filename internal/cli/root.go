package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quadstat/internal/config"
	"quadstat/internal/render"
	"quadstat/internal/vcs"
)

// deps are the outside-world capabilities the render path needs.
type deps struct {
	runner    vcs.Runner
	termWidth func() int
}

// NewRootCmd builds the cc-quadstat command wired to the real system.
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{runner: vcs.ExecRunner{}, termWidth: render.TermWidth})
}

func newRootCmd(d deps) *cobra.Command {
	var (
		listThemes   bool
		setTheme     string
		initSettings bool
	)

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "cc-quadstat – status line for Claude Code",
		Long: "cc-quadstat renders a two-line powerline status for Claude Code.\n" +
			"Run without arguments as the statusLine command; it reads the hook JSON from stdin.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return unknownOption(cmd, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case listThemes:
				return runListThemes(out)
			case cmd.Flags().Changed("set-theme"):
				return runSetTheme(out, setTheme)
			case initSettings:
				return runInit(out)
			}
			// Default action: render from the hook payload
			return runRender(cmd.Context(), cmd.InOrStdin(), out, d)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&listThemes, "list-themes", "l", false, "List available themes")
	cmd.Flags().StringVarP(&setTheme, "set-theme", "t", "", "Set and persist the theme")
	cmd.Flags().BoolVar(&initSettings, "init", false, "Register cc-quadstat as the Claude Code statusLine command")
	cmd.MarkFlagsMutuallyExclusive("list-themes", "set-theme", "init")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		msg := err.Error()
		if strings.HasPrefix(msg, "unknown") {
			fields := strings.Fields(msg)
			return unknownOption(c, fields[len(fields)-1])
		}
		if strings.Contains(msg, "'t'") || strings.Contains(msg, "set-theme") {
			return fmt.Errorf("%s\nUsage: %s --set-theme <theme>", msg, config.AppName)
		}
		return fmt.Errorf("%s\n\n%s", msg, usage(c))
	})
	return cmd
}

func unknownOption(cmd *cobra.Command, opt string) error {
	return fmt.Errorf("unknown option: %s\n\n%s", opt, usage(cmd))
}

func usage(cmd *cobra.Command) string {
	return strings.TrimRight(cmd.UsageString(), "\n")
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
