// Command hangeulctl inspects the vocabulary CSV offline: it prints what the
// API would serve and checks the file for problems.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/hangeul-backend/internal/adapter/csvsource"
	"github.com/heartmarshall/hangeul-backend/internal/app"
	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/service/korean"
)

const defaultDataPath = "./data/Korean_clean.csv"

type globalOptions struct {
	dataPath string
	debug    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "hangeulctl: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("output error %w: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "hangeulctl",
		Short:         "Inspect the Korean vocabulary data offline",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.debug)
			return nil
		},
	}
	bindGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newFlashcardsCommand(opts),
		newSentenceGameCommand(opts),
		newSearchCommand(opts),
		newValidateCommand(opts),
	)
	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVar(&opts.dataPath, "data", defaultDataPath, "path to the vocabulary CSV")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// staticEntries serves an already parsed file to the service.
type staticEntries []domain.RawEntry

func (s staticEntries) Entries(context.Context) []domain.RawEntry { return s }

func loadEntries(path string) ([]domain.RawEntry, error) {
	entries, err := csvsource.NewFileSource(path).Load()
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded vocabulary", slog.String("path", path), slog.Int("entries", len(entries)))
	return entries, nil
}

func newService(opts *globalOptions) (*korean.Service, error) {
	entries, err := loadEntries(opts.dataPath)
	if err != nil {
		return nil, err
	}
	return korean.NewService(slog.Default(), staticEntries(entries), nil), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
