package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"interventions/internal/services/scheduler/domain"
)

func printUrgency(w io.Writer, r domain.UrgencyResult) {
	_, _ = fmt.Fprintf(w, "Urgency: %d/10\nScore: %.3f\nConfidence: %.1f%%\n", r.Level, r.Score, r.Confidence*100)
}

func printMatch(w io.Writer, m domain.MatchResult) {
	_, _ = fmt.Fprintf(w, "Best Match: %s\n", m.Display)
}

func printAssessment(w io.Writer, a domain.Assessment) {
	_, _ = fmt.Fprintf(w, "Assessment: %s\nAssessed At: %s\n", a.ID, a.AssessedAt)
	printUrgency(w, a.Urgency)
	_, _ = fmt.Fprintf(w, "Best Tech: %s\n", a.Match.Display)
}

func printTechnicians(w io.Writer, techs []domain.Technician) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tHOME\tSPECIALTY\tSKILLS")
	for _, t := range techs {
		spec := t.Specialty
		if spec == "" {
			spec = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.HomeLocation, spec, strings.Join(t.Skills, ","))
	}
	_ = tw.Flush()
}

func printModel(w io.Writer, m domain.ModelStats, limit int) {
	_, _ = fmt.Fprintf(w, "Vocabulary: %d words from %d examples\n\n", m.Vocabulary, m.Examples)
	words := m.Words
	if limit > 0 && limit < len(words) {
		words = words[:limit]
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "WORD\tWEIGHT\tFREQUENCY")
	for _, ww := range words {
		_, _ = fmt.Fprintf(tw, "%s\t%.4f\t%d\n", ww.Word, ww.Weight, ww.Frequency)
	}
	_ = tw.Flush()
}

// printDemo renders the fixed scenarios as plain text reports
func printDemo(w io.Writer, rep demoReport) {
	if len(rep.Urgency) > 0 {
		_, _ = fmt.Fprint(w, "SMART SCHEDULING\n\n")
		for i, c := range rep.Urgency {
			_, _ = fmt.Fprintf(w, "=== REQUEST %d ===\nProblem: %s\nML Urgency: %d/10\nConfidence: %.1f%%\nBest Tech: %s\n\n",
				i+1, c.Problem, c.Urgency.Level, c.Urgency.Confidence*100, c.Match.Display)
		}
	}
	if len(rep.Skills) > 0 {
		_, _ = fmt.Fprint(w, "SKILL MATCHING\n\n")
		for _, c := range rep.Skills {
			_, _ = fmt.Fprintf(w, "Problem: %s repair in %s\nRequired Skills: [%s]\nBest Match: %s\n\n",
				c.Input.ProblemType, c.Input.Location, strings.Join(c.Input.RequiredSkills, ", "), c.Match.Display)
		}
	}
}
