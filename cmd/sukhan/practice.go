package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"sukhan/internal/bootstrap"
	curriculumdto "sukhan/internal/modules/curriculum/dto"
	sessiondto "sukhan/internal/modules/session/dto"
	"sukhan/internal/ui/render"
)

func newWordCmd(dataPath *string) *cobra.Command {
	word := &cobra.Command{Use: "word", Short: "Word scheduler"}

	word.AddCommand(&cobra.Command{
		Use:   "show <word-id>",
		Short: "Show the dictionary entry and schedule of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				entry, err := app.CurriculumCLI.LookupWord(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Card(sessiondto.CardOutput{
					WordID:                entry.WordID,
					Tajik:                 entry.Tajik,
					English:               entry.English,
					Russian:               entry.Russian,
					PronunciationLatin:    entry.PronunciationLatin,
					PronunciationCyrillic: entry.PronunciationCyrillic,
				}, true))
				state, ok, err := app.SRSCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not seen yet")
					return nil
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.WordState(state))
				return nil
			})
		},
	})

	word.AddCommand(&cobra.Command{
		Use:   "seen <word-id>",
		Short: "Start tracking a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				state, err := app.SRSCLI.Seen(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.WordState(state))
				return nil
			})
		},
	})

	word.AddCommand(&cobra.Command{
		Use:   "rate <word-id> <again|hard|good|easy>",
		Short: "Rate recall of a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				state, err := app.SRSCLI.Rate(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.WordState(state))
				return nil
			})
		},
	})

	var unitID string
	due := &cobra.Command{
		Use:   "due",
		Short: "List words scheduled for today or earlier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				refs, err := curriculumWords(ctx, app, unitID)
				if err != nil {
					return err
				}
				dueRefs := app.SRSCLI.Due(ctx, refs)
				if len(dueRefs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing due")
					return nil
				}
				for _, ref := range dueRefs {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ref.ID())
				}
				return nil
			})
		},
	}
	due.Flags().StringVar(&unitID, "unit", "", "limit to one unit")
	word.AddCommand(due)

	word.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget every word schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SRSCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "word progress reset")
				return nil
			})
		},
	})
	return word
}

// curriculumWords collects the words of one unit, or of every unit when
// unitID is empty.
func curriculumWords(ctx context.Context, app *bootstrap.App, unitID string) ([]curriculumdto.WordRef, error) {
	unitIDs := []string{unitID}
	if unitID == "" {
		units, err := app.CurriculumCLI.ListUnits(ctx)
		if err != nil {
			return nil, err
		}
		unitIDs = lo.Map(units, func(u curriculumdto.UnitSummaryOutput, _ int) string { return u.ID })
	}
	var refs []curriculumdto.WordRef
	for _, id := range unitIDs {
		unit, err := app.CurriculumCLI.GetUnit(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, lesson := range unit.Lessons {
			refs = append(refs, lesson.Words...)
		}
	}
	return lo.Uniq(refs), nil
}

func newReviewCmd(dataPath *string) *cobra.Command {
	review := &cobra.Command{Use: "review", Short: "Preview review and quiz sets"}

	review.AddCommand(&cobra.Command{
		Use:   "mid <unit-id> <after-lesson-number>",
		Short: "Select words for the review after a lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			after, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("lesson number: %w", err)
			}
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				set, err := app.ReviewCLI.Mid(ctx, args[0], after)
				if err != nil {
					return err
				}
				printWords(cmd, set.Words)
				return nil
			})
		},
	})

	review.AddCommand(&cobra.Command{
		Use:   "end <unit-id>",
		Short: "Select words for the end-of-unit review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				set, err := app.ReviewCLI.End(ctx, args[0])
				if err != nil {
					return err
				}
				printWords(cmd, set.Words)
				return nil
			})
		},
	})

	review.AddCommand(&cobra.Command{
		Use:   "quiz <unit-id>",
		Short: "Draw a quiz for a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				quiz, err := app.ReviewCLI.Quiz(ctx, args[0])
				if err != nil {
					return err
				}
				cards := lo.Map(quiz.Words, func(w curriculumdto.WordOutput, _ int) sessiondto.CardOutput {
					return sessiondto.CardOutput{WordID: w.WordID, Tajik: w.Tajik, English: w.English}
				})
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Quiz(cards, quiz.Translations))
				return nil
			})
		},
	})
	return review
}

func printWords(cmd *cobra.Command, words []curriculumdto.WordOutput) {
	if len(words) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no words")
		return
	}
	for _, w := range words {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", w.WordID, w.Tajik, w.English)
	}
}

func newSessionCmd(dataPath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Practice session lifecycle"}

	session.AddCommand(&cobra.Command{
		Use:   "start <unit-id> <checkpoint-id>",
		Short: "Start practising a checkpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Start(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s %s (%s)\n", out.SessionID, out.CheckpointTitle, out.CheckpointKind)
				if out.CheckpointKind == "quiz" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Quiz(out.Cards, out.Translations))
					return nil
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Cards(out.Cards))
				return nil
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "rate <word-id> <again|hard|good|easy>",
		Short: "Rate a card of the active session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Rate(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s rated %s, next in %d days, %d cards left\n", out.WordID, out.Rating, out.Interval, out.Remaining)
				return nil
			})
		},
	})

	var sessionID string
	var answers []string
	end := &cobra.Command{
		Use:   "end [--answer <word>=<translation>]...",
		Short: "Finish the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.End(ctx, sessionID, parsed)
				if err != nil {
					return err
				}
				if out.QuizTotal > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "score %d/%d passed=%t\n", out.QuizCorrect, out.QuizTotal, out.Completed)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session ended: %s checkpoint=%s completed=%t duration=%dmin note=%s\n", out.SessionID, out.CheckpointID, out.Completed, out.DurationMin, out.Path)
				return nil
			})
		},
	}
	end.Flags().StringVar(&sessionID, "session-id", "", "optional session id (defaults to active session)")
	end.Flags().StringSliceVar(&answers, "answer", nil, "quiz answer as word=translation, both 1-based")
	session.AddCommand(end)

	session.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				active, err := app.SessionCLI.GetActive(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session=%s unit=%s checkpoint=%s kind=%s rated=%d remaining=%d started=%s\n",
					active.SessionID, active.UnitID, active.CheckpointID, active.CheckpointKind, active.Rated, active.Remaining,
					active.StartedAt.Format("2006-01-02T15:04:05Z07:00"))
				return nil
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Drop the active session without recording progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Cancel(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session cancelled")
				return nil
			})
		},
	})
	return session
}

// parseAnswers turns 1-based "word=translation" pairs into 0-based indexes.
func parseAnswers(raw []string) (map[int]int, error) {
	answers := make(map[int]int, len(raw))
	for _, pair := range raw {
		left, right, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q: want word=translation", pair)
		}
		word, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil || word < 1 {
			return nil, fmt.Errorf("answer %q: bad word number", pair)
		}
		translation, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil || translation < 1 {
			return nil, fmt.Errorf("answer %q: bad translation number", pair)
		}
		answers[word-1] = translation - 1
	}
	return answers, nil
}
