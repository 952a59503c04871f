// cmd/commands.go

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"go_tap_to_basic/internal/config"
	"go_tap_to_basic/internal/logs"
)

var (
	// persistent flags
	configPath string
	logLevel   string
	logFile    string

	// recover/scan flags
	prgPath     string
	basPath     string
	decodedPath string
	reportPath  string
	useCopy     string
	startSkip   int
	foldShifted bool

	// strings flags
	stringsOut string
	minLen     int
	groupOut   bool

	// listing flags
	listingOut  string
	usePointers bool

	cfg       config.Config
	logger    *slog.Logger
	logCloser func()

	rootCmd = &cobra.Command{
		Use:   "go_tap_to_basic",
		Short: "Recover Commodore BASIC listings from degraded .tap captures",
		Long: `go_tap_to_basic decodes a cbm .tap capture of unknown reliability into a
readable BASIC listing: pulses are clustered into short/medium/long bands,
demodulated into bytes, framed into tape blocks where possible, and
detokenized. everything is best-effort; checksum counts and candidate scores
are the confidence signals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, logCloser, err = logs.New(logs.ParseLevel(logLevel), logFile)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser()
			}
		},
	}

	recoverCmd = &cobra.Command{
		Use:   "recover [tap file]",
		Short: "Recover a BASIC program by parsing tape blocks",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecover,
	}

	scanCmd = &cobra.Command{
		Use:   "scan [tap file]",
		Short: "Recover a BASIC program by heuristic structural scanning (no block framing)",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}

	stringsCmd = &cobra.Command{
		Use:   "strings [tap file]",
		Short: "Dump incidental readable strings from the decoded byte stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runStrings,
	}

	listingCmd = &cobra.Command{
		Use:   "listing [prg file]",
		Short: "Detokenize an existing program image into a readable listing",
		Args:  cobra.ExactArgs(1),
		RunE:  runListing,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional yaml file overriding the tuned recovery parameters")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write log records to this file")

	for _, c := range []*cobra.Command{recoverCmd, scanCmd} {
		c.Flags().StringVar(&prgPath, "prg", "", "Output program image path (default: <tap>.prg)")
		c.Flags().StringVar(&basPath, "bas", "", "Output listing path (default: <tap>.bas.txt)")
		c.Flags().StringVar(&decodedPath, "decoded", "", "Write the raw decoded byte stream here (diagnostic)")
		c.Flags().IntVar(&startSkip, "start-skip", 0, "Leading program body bytes to skip before structural parsing")
		c.Flags().BoolVar(&foldShifted, "fold-shifted", false, "Fold PETSCII shifted letters and cursor codes when detokenizing")
	}
	recoverCmd.Flags().StringVar(&useCopy, "use-copy", "auto", "Which tape block copy to use: A, B, or auto (prefer A if present)")
	recoverCmd.Flags().StringVar(&reportPath, "report", "", "Write a per-block diagnostic table here")

	stringsCmd.Flags().StringVarP(&stringsOut, "out", "o", "", "Output path (default: <tap>.strings.txt)")
	stringsCmd.Flags().IntVar(&minLen, "minlen", 0, "Minimum string length (default: configured value)")
	stringsCmd.Flags().BoolVar(&groupOut, "group", false, "Also write strings grouped by location heuristics")

	listingCmd.Flags().StringVarP(&listingOut, "out", "o", "", "Output text file (default: stdout)")
	listingCmd.Flags().IntVar(&startSkip, "start-skip", 0, "Bytes to skip at the start of the program body")
	listingCmd.Flags().BoolVar(&usePointers, "use-pointers", false, "Advance through lines via next-pointers instead of observed terminators")
	listingCmd.Flags().BoolVar(&foldShifted, "fold-shifted", false, "Fold PETSCII shifted letters and cursor codes")

	rootCmd.AddCommand(recoverCmd, scanCmd, stringsCmd, listingCmd)
}
