package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/quiz"
	"github.com/abhisek/lectio/internal/report"
	"github.com/abhisek/lectio/internal/upload"
)

var errInputClosed = errors.New("input closed before the quiz was finished")

var assessCmd = &cobra.Command{
	Use:   "assess <image>",
	Short: "Run a whole assessment on stdin/stdout",
	Long: "Run one assessment without the TUI: the text is printed, then every open question is asked " +
		"in rounds until each one is answered correctly or has used both attempts. The report is written to --out.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, _ := cmd.Flags().GetString("first")
		last, _ := cmd.Flags().GetString("last")
		out, _ := cmd.Flags().GetString("out")
		formatName, _ := cmd.Flags().GetString("format")

		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		h := &headless{
			orch:   d.orch,
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    cmd.OutOrStdout(),
			dir:    out,
			format: format,
		}
		path, err := h.run(cmd.Context(), first, last, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(h.out, "Rapport enregistré :", path)
		return nil
	},
}

func init() {
	assessCmd.Flags().String("first", "", "Pupil first name")
	assessCmd.Flags().String("last", "", "Pupil last name")
	assessCmd.Flags().String("out", ".", "Directory the report is written to")
	assessCmd.Flags().String("format", "csv", "Report format: csv or xlsx")
	_ = assessCmd.MarkFlagRequired("first")
	_ = assessCmd.MarkFlagRequired("last")
}

// headless drives an orchestrator from line-based input.
type headless struct {
	orch   *assessment.Orchestrator
	in     *bufio.Scanner
	out    io.Writer
	dir    string
	format report.Format
}

// run plays one session and returns the report path.
func (h *headless) run(ctx context.Context, first, last, imagePath string) (string, error) {
	o := h.orch
	if err := o.Login(first, last); err != nil {
		return "", errors.New(o.Alert())
	}

	picked, err := upload.Load(upload.ExpandPath(imagePath))
	if err != nil {
		if errors.Is(err, upload.ErrNotImage) {
			o.RejectUpload(err)
			return "", errors.New(o.Alert())
		}
		return "", err
	}

	fmt.Fprintln(h.out, "Analyse du texte en cours...")
	if err := o.Upload(ctx, picked); err != nil {
		return "", errors.New(o.Alert())
	}
	h.printStory()

	if err := o.FinishReading(); err != nil {
		return "", err
	}

	for round := 1; !o.Engine().IsAllComplete(); round++ {
		fmt.Fprintf(h.out, "\n=== Tour %d ===\n", round)
		if err := h.askOpen(); err != nil {
			return "", err
		}
		if _, err := o.Submit(ctx); err != nil {
			fmt.Fprintln(h.out, o.Alert())
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		h.printVerdicts()
	}

	if err := o.Complete(ctx); err != nil {
		return "", err
	}
	h.printScore()

	return o.ExportReport(h.dir, h.format)
}

func (h *headless) printStory() {
	s := h.orch.Story()
	fmt.Fprintf(h.out, "\n%s\n\n%s\n", s.Title, s.Content)
	if len(s.Glossary) > 0 {
		fmt.Fprintln(h.out, "\nGlossaire :")
		for _, g := range s.Glossary {
			fmt.Fprintf(h.out, "  %s : %s\n", g.Word, g.Definition)
		}
	}
}

// askOpen reads one line per open question.
func (h *headless) askOpen() error {
	o := h.orch
	for _, q := range o.Story().Questions {
		st, _ := o.Engine().State(q.ID)
		if st.Status.Terminal() {
			continue
		}
		fmt.Fprintf(h.out, "\n%d. [%s] %s\n", q.ID, q.Type.Label(), q.Text)
		if st.Status == quiz.IncorrectRetry {
			fmt.Fprintln(h.out, "   (deuxième essai)")
		}
		fmt.Fprint(h.out, "> ")

		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return err
			}
			return errInputClosed
		}
		if err := o.SetAnswer(q.ID, h.in.Text()); err != nil {
			return err
		}
	}
	return nil
}

func (h *headless) printVerdicts() {
	o := h.orch
	for _, q := range o.Story().Questions {
		st, _ := o.Engine().State(q.ID)
		if st.Feedback == nil {
			continue
		}
		mark := "~"
		switch st.Status {
		case quiz.Correct:
			mark = "✓"
		case quiz.FailedFinal:
			mark = "✗"
		}
		fmt.Fprintf(h.out, "%s %d. %s\n", mark, q.ID, st.Feedback.Feedback)
		if st.Status == quiz.FailedFinal && st.Feedback.CorrectAnswer != "" {
			fmt.Fprintf(h.out, "   Réponse attendue : %s\n", st.Feedback.CorrectAnswer)
		}
	}
}

func (h *headless) printScore() {
	o := h.orch
	sc := o.Score()
	fmt.Fprintf(h.out, "\nLittéral %d/4  Inférentiel %d/4  Évaluatif %d/2  Total %d/10\n",
		sc.Literal, sc.Inferential, sc.Evaluative, sc.Total)
	if text, ok := o.FinalFeedback(); ok {
		fmt.Fprintf(h.out, "\n%s\n", text)
	}
}
