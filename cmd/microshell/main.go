package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/geekfactory/microshell/bell"
	"github.com/geekfactory/microshell/shell"
	"github.com/geekfactory/microshell/transport"
)

var (
	cfgFile    string
	promptFlag string
	quiet      bool
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "microshell",
		Short: "Interactive command shell over a raw terminal",
		Long: `microshell runs the line-editing command shell against the local
terminal in raw mode: byte-accurate echo, backspace editing, and history
recall with the arrow keys. Alert bytes ring an audible tone when audio
is available.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.Flags().StringVar(&promptFlag, "prompt", "", "override the prompt string")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "disable audible alerts")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "host log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "microshell"})
	if lvl, err := log.ParseLevel(logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if promptFlag != "" {
		cfg.Prompt = promptFlag
	}

	var ringer *bell.Ringer
	if cfg.Audio.Enabled && !quiet {
		if ringer, err = bell.New(); err != nil {
			logger.Warn("audio unavailable, alerts are silent", "err", err)
			ringer = nil
		}
	}
	defer ringer.Close()

	tt := newTermTransport()
	tt.onBell = ringer.Ring
	if err := tt.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer tt.Fini()

	batch := transport.NewBatcher(tt, cfg.Output.BatchSize,
		time.Duration(cfg.Output.FlushIntervalMS)*time.Millisecond)

	sh, err := shell.New(batch, shell.Config{
		MaxCommands:  cfg.Limits.MaxCommands,
		MaxArgs:      cfg.Limits.MaxArgs,
		LineLen:      cfg.Limits.LineLen,
		HistoryDepth: cfg.Limits.HistoryDepth,
		Prompt:       cfg.Prompt,
		MOTD:         cfg.MOTD,
	})
	if err != nil {
		return err
	}

	registerCommands(sh, tt)
	logger.Debug("shell ready",
		"prompt", cfg.Prompt,
		"history", cfg.Limits.HistoryDepth,
		"audio", ringer != nil)

	// Cooperative poll loop: one byte per iteration, batched output flushed
	// on quiescence. Ctrl+C or Ctrl+D in the byte stream stops the host.
	for !tt.quit {
		if !sh.Poll() {
			batch.Tick()
			time.Sleep(2 * time.Millisecond)
		}
	}
	batch.Flush()
	tt.WriteByte('\r')
	tt.WriteByte('\n')
	return nil
}
