package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lectio/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List completed assessments, or the answers of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 1 {
			return printAnswers(cmd, s.EventRepo(), args[0])
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return printAssessments(cmd, s.EventRepo(), limit)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
}

func printAssessments(cmd *cobra.Command, repo store.EventRepo, limit int) error {
	records, err := repo.QueryAssessments(cmd.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query assessments: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No assessments recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %-24s  %-24s  %-11s  %s\n",
		"Session", "Date", "Pupil", "Story", "L/I/E", "Total")
	fmt.Fprintln(out, strings.Repeat("─", 124))
	for _, r := range records {
		fmt.Fprintf(out, "%-36s  %-16s  %-24s  %-24s  %-11s  %d/10\n",
			r.SessionID,
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			truncate(r.FirstName+" "+r.LastName, 24),
			truncate(r.StoryTitle, 24),
			fmt.Sprintf("%d/%d/%d", r.ScoreLiteral, r.ScoreInferential, r.ScoreEvaluative),
			r.ScoreTotal,
		)
	}
	return nil
}

func printAnswers(cmd *cobra.Command, repo store.EventRepo, sessionID string) error {
	answers, err := repo.AnswersForSession(cmd.Context(), sessionID)
	if err != nil {
		return fmt.Errorf("query answers: %w", err)
	}
	if len(answers) == 0 {
		return fmt.Errorf("no answers recorded for session %s", sessionID)
	}

	out := cmd.OutOrStdout()
	for _, a := range answers {
		fmt.Fprintf(out, "Q%d [%s] try %d: %s\n", a.QuestionID, a.QuestionType, a.Attempt, a.Status)
		fmt.Fprintf(out, "  %s\n", a.QuestionText)
		answer := a.StudentAnswer
		if strings.TrimSpace(answer) == "" {
			answer = "(empty)"
		}
		fmt.Fprintf(out, "  > %s\n", answer)
		if a.Feedback != "" {
			fmt.Fprintf(out, "  %s\n", a.Feedback)
		}
	}
	return nil
}
