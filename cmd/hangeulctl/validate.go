package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/service/korean"
)

// report summarizes a vocabulary file.
type report struct {
	Rows        int
	Playable    int
	BadIDs      []string
	NoSentences int
}

func newValidateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the vocabulary CSV and report rows the API would degrade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadEntries(opts.dataPath)
			if err != nil {
				color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "FAIL %v\n", err)
				return fmt.Errorf("validate %s: %w", opts.dataPath, err)
			}
			printReport(cmd.OutOrStdout(), buildReport(cmd.Context(), entries))
			return nil
		},
	}
}

func buildReport(ctx context.Context, entries []domain.RawEntry) report {
	r := report{Rows: len(entries)}
	for _, e := range entries {
		if _, err := strconv.Atoi(strings.TrimSpace(e.ID)); err != nil {
			r.BadIDs = append(r.BadIDs, e.ID)
		}
		if strings.TrimSpace(e.SampleSentence) == "" {
			r.NoSentences++
		}
	}

	items, err := korean.NewService(slog.Default(), staticEntries(entries), nil).SentenceGame(ctx)
	if err == nil {
		r.Playable = len(items)
	}
	return r
}

func printReport(w io.Writer, r report) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	if r.Rows == 0 {
		warn.Fprintln(w, "WARN no rows: the API will answer 404 for flashcards")
	} else {
		ok.Fprintf(w, "OK   %d row(s)\n", r.Rows)
	}

	if r.Playable == 0 {
		warn.Fprintln(w, "WARN no sentence game items: the API will answer 404 for the game")
	} else {
		ok.Fprintf(w, "OK   %d sentence game item(s)\n", r.Playable)
	}

	if len(r.BadIDs) > 0 {
		warn.Fprintf(w, "WARN %d row(s) with a non-numeric id: %s\n",
			len(r.BadIDs), strings.Join(quoteAll(r.BadIDs), ", "))
	}
	if r.NoSentences > 0 {
		warn.Fprintf(w, "WARN %d row(s) without a sample sentence\n", r.NoSentences)
	}
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
