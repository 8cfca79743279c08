// Package main implements the syncpath CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/mtth/syncpath/escape"
	"github.com/mtth/syncpath/fspath"
	"github.com/mtth/syncpath/fspolicy"
	"github.com/mtth/syncpath/internal/except"
	"github.com/mtth/syncpath/internal/scan"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("syncpath/log")
		if err != nil {
			errs = append(errs, err)
			fp = "syncpath.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

var (
	configPath  string
	fsName      string
	ignorePats  []string
	maxDepth    uint8
	insensitive bool
	escaped     bool
)

func main() {
	ctx := context.Background()

	checkCmd := &cobra.Command{
		Use:   "check [PATH]",
		Short: "Check a tree for names the target filesystem rejects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			pol, err := loadPolicy()
			if err != nil {
				return err
			}
			findings, err := scan.Tree(root, scan.Options{
				Policy:   pol,
				Ignore:   ignorePats,
				MaxDepth: maxDepth,
			})
			if err != nil {
				return err
			}
			for _, finding := range findings {
				fmt.Printf("%v\t%s\t%s\n", finding.Issue, finding.Path, finding.Detail) //nolint:forbidigo
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Printf("Checked %s against %s: %d finding(s).\n", root, fsName, len(findings)) //nolint:forbidigo
			}
			return nil
		},
	}
	checkCmd.Flags().StringVar(&fsName, "fs", fspolicy.KindUnknown.String(), "target filesystem kind")
	checkCmd.Flags().StringArrayVar(&ignorePats, "ignore", nil, "folder name patterns to skip")
	checkCmd.Flags().Uint8Var(&maxDepth, "max-depth", 0, "maximum folder depth to enter")

	compareCmd := &cobra.Command{
		Use:   "compare LHS RHS",
		Short: "Compare two names the way the sync engine orders them",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Printf("%d\n", fspath.CompareUTF(args[0], escaped, args[1], escaped, insensitive)) //nolint:forbidigo
			return nil
		},
	}
	compareCmd.Flags().BoolVar(&insensitive, "ci", false, "fold case while comparing")
	compareCmd.Flags().BoolVar(&escaped, "escaped", false, "decode % escapes while comparing")

	escapeCmd := &cobra.Command{
		Use:   "escape NAME",
		Short: "Escape a name for the target filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pol, err := loadPolicy()
			if err != nil {
				return err
			}
			fmt.Println(escape.Encode(args[0], pol.IsIncompatible)) //nolint:forbidigo
			return nil
		},
	}
	escapeCmd.Flags().StringVar(&fsName, "fs", fspolicy.KindUnknown.String(), "target filesystem kind")

	unescapeCmd := &cobra.Command{
		Use:   "unescape NAME",
		Short: "Decode a previously escaped name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Println(escape.Decode(args[0])) //nolint:forbidigo
			return nil
		},
	}

	componentsCmd := &cobra.Command{
		Use:   "components PATH",
		Short: "Print each component of a remote path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for component := range fspath.NewRemote(args[0]).Components() {
				fmt.Println(component) //nolint:forbidigo
			}
			return nil
		},
	}

	rootCmd := &cobra.Command{Use: "syncpath", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to policy configuration")
	rootCmd.AddCommand(checkCmd, compareCmd, escapeCmd, unescapeCmd, componentsCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadPolicy resolves the policy for the --fs flag, overlaying --config overrides when present.
// Without --config, a .syncpath.yaml in the working directory applies if it exists.
func loadPolicy() (fspolicy.Policy, error) {
	kind, err := fspolicy.KindString(fsName)
	if err != nil {
		return fspolicy.Policy{}, err
	}
	table, err := loadTable()
	if err != nil {
		return fspolicy.Policy{}, err
	}
	return table[kind], nil
}

func loadTable() (fspolicy.Table, error) {
	if configPath != "" {
		return fspolicy.ReadTable(configPath)
	}
	table, err := fspolicy.ReadTable(".")
	if errors.Is(err, fspolicy.ErrMissingConfig) {
		return fspolicy.DefaultTable(), nil
	}
	return table, err
}
