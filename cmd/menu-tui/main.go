// menu-tui is the terminal front end of menuboard. It keeps the menu in
// memory for the lifetime of the process; nothing is saved on exit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"menuboard/internal/auth"
	"menuboard/internal/logging"
	"menuboard/internal/menu"
	"menuboard/internal/preferences"
	"menuboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var variantFlag string
	var seedFlag string
	var username string
	var sorted bool
	var logFile string
	var logLevel string

	flagSet := pflag.NewFlagSet("menu-tui", pflag.ContinueOnError)
	flagSet.StringVar(&variantFlag, "variant", string(menu.VariantBasic), "form variant: basic or detailed")
	flagSet.StringVar(&seedFlag, "seed", menu.SeedDefault, `starting menu: "default", "empty" or a YAML file path`)
	flagSet.StringVar(&username, "user", "", "skip the login screen as this user")
	flagSet.BoolVar(&sorted, "sorted", false, "start with the menu sorted by price")
	flagSet.StringVar(&logFile, "log-file", "", "write debug logs to this file")
	flagSet.StringVar(&logLevel, "log-level", "debug", "log level for --log-file")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	variant, err := menu.ParseVariant(variantFlag)
	if err != nil {
		return err
	}

	seed, err := menu.LoadSeed(seedFlag)
	if err != nil {
		return fmt.Errorf("loading seed menu: %w", err)
	}

	// The alt screen owns stdout, so logs only go to a file.
	var logOutput io.Writer = io.Discard
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer file.Close()
		logOutput = file
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(logOutput, level, "json")

	// Tokens are issued for parity with the API login; the TUI never
	// checks them, so a per-process secret is enough.
	tokens, err := auth.NewTokenIssuer("menu-tui", auth.DefaultTokenTTL)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Menu:        menu.NewService(menu.NewInMemoryRepository(seed), variant, logger),
		Preferences: preferences.NewService(sorted),
		Auth:        auth.NewService(tokens, logger),
		Username:    username,
	})

	logger.Info("menu-tui starting", slog.String("variant", string(variant)), slog.Int("items", len(seed)))

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `menu-tui: browse and edit a restaurant menu in the terminal.

The menu lives in memory and is lost on exit.

Usage:
  menu-tui [flags]

Flags:
`)
	flagSet.PrintDefaults()
}
