package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFlashcardsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flashcards",
		Short: "Print the flashcards served by /api/korean/flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			cards, err := svc.Flashcards(cmd.Context())
			if err != nil {
				return fmt.Errorf("flashcards: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), cards)
		},
	}
}

func newSentenceGameCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence-game",
		Short: "Print the items served by /api/korean/sentence-game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			items, err := svc.SentenceGame(cmd.Context())
			if err != nil {
				return fmt.Errorf("sentence game: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
}

func newSearchCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search words and sentences like /api/korean/search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			result, err := svc.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}
