package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"interventions/internal/platform/net/http/bind"
	pstrings "interventions/internal/platform/strings"
	"interventions/internal/services/api"
	"interventions/internal/services/scheduler/domain"
	"interventions/internal/services/scheduler/service"

	"github.com/spf13/cobra"
)

// jobFlags are the matching inputs shared by rank and assess
type jobFlags struct {
	problemType string
	location    string
	skills      string
}

func (f *jobFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.problemType, "type", "", "problem type, matched case sensitively against specialties, e.g. ELECTRICAL")
	cmd.Flags().StringVar(&f.location, "location", "", "job location; empty matches every technician")
	cmd.Flags().StringVar(&f.skills, "skills", "", "comma separated required skills, e.g. ELECTRICAL,HEIGHTS")
}

func (f *jobFlags) input() domain.MatchInput {
	return domain.MatchInput{
		ProblemType:    strings.TrimSpace(f.problemType),
		Location:       strings.TrimSpace(f.location),
		RequiredSkills: pstrings.SplitCSV(f.skills),
	}
}

// description joins args, or reads stdin when there are none
func description(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (a *app) predictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict [text...]",
		Short: "Predict the urgency level of a problem description",
		Long: `Predict scores a free text problem description and scales it to a 1..10 level.
With no arguments the description is read from stdin.`,
		Example: `  interventions-cli predict "gas leak!!!"
  echo "Park bench needs painting" | interventions-cli predict --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := description(cmd, args)
			if err != nil {
				return err
			}
			in := domain.UrgencyInput{Description: text}
			return run(a, cmd, func(ctx context.Context, svc service.Service) (domain.UrgencyResult, error) {
				if err := bind.Validate(in); err != nil {
					return domain.UrgencyResult{}, err
				}
				return svc.PredictUrgency(ctx, in)
			}, printUrgency)
		},
	}
}

func (a *app) rankCmd() *cobra.Command {
	var f jobFlags
	cmd := &cobra.Command{
		Use:     "rank",
		Short:   "Pick the best technician for a job",
		Example: `  interventions-cli rank --type PLUMBING --location Suburbs --skills PLUMBING,EMERGENCY`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := f.input()
			return run(a, cmd, func(ctx context.Context, svc service.Service) (domain.MatchResult, error) {
				if err := bind.Validate(in); err != nil {
					return domain.MatchResult{}, err
				}
				return svc.RankTechnicians(ctx, in)
			}, printMatch)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) assessCmd() *cobra.Command {
	var f jobFlags
	cmd := &cobra.Command{
		Use:     "assess [text...]",
		Short:   "Score urgency and assign a technician for one intervention",
		Example: `  interventions-cli assess --type ELECTRICAL --location Downtown --skills ELECTRICAL,HEIGHTS "Broken traffic light"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := description(cmd, args)
			if err != nil {
				return err
			}
			job := f.input()
			in := domain.AssessInput{
				Description:    text,
				ProblemType:    job.ProblemType,
				Location:       job.Location,
				RequiredSkills: job.RequiredSkills,
			}
			return run(a, cmd, func(ctx context.Context, svc service.Service) (domain.Assessment, error) {
				if err := bind.Validate(in); err != nil {
					return domain.Assessment{}, err
				}
				return svc.Assess(ctx, in)
			}, printAssessment)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) techniciansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "technicians",
		Short: "List the technician roster in tie-break order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(a, cmd, func(ctx context.Context, svc service.Service) ([]domain.Technician, error) {
				return svc.Technicians(ctx)
			}, printTechnicians)
		},
	}
}

func (a *app) modelCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Show the learned urgency vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(a, cmd, func(ctx context.Context, svc service.Service) (domain.ModelStats, error) {
				return svc.Model(ctx)
			}, func(w io.Writer, m domain.ModelStats) { printModel(w, m, limit) })
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many words, 0 for all")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [urgency|skills]",
		Short:     "Run the fixed urgency and skill matching scenarios",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"urgency", "skills"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return run(a, cmd, func(ctx context.Context, svc service.Service) (demoReport, error) {
				var rep demoReport
				var err error
				if which != "skills" {
					if rep.Urgency, err = svc.DemoUrgency(ctx); err != nil {
						return rep, err
					}
				}
				if which != "urgency" {
					if rep.Skills, err = svc.DemoSkills(ctx); err != nil {
						return rep, err
					}
				}
				return rep, nil
			}, printDemo)
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Long:  "Serve runs the same API as interventions-api, configured from CORE_API_* and CORE_SCHEDULER_*.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return api.Run(cmd.Context(), a.cfg)
		},
	}
}

// demoReport groups whichever demo sets were requested
type demoReport struct {
	Urgency []domain.DemoUrgencyCase `json:"urgency,omitempty"`
	Skills  []domain.DemoSkillCase   `json:"skills,omitempty"`
}
