package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/nutrition"
)

// ValidFormats lists the goals output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// GoalsOptions holds flags for the goals command.
type GoalsOptions struct {
	Sex      string
	Age      int
	Weight   float64
	Height   float64
	Activity string
	Goal     string
	Format   string
}

// NewGoalsCommand creates the goals command.
func NewGoalsCommand() *cobra.Command {
	opts := &GoalsOptions{}

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Print daily calorie and macro targets",
		Long: `Compute BMR, TDEE and the daily calorie and macro targets.

Example:
  nutrigym goals --sex male --age 25 --weight 70 --height 175 --activity moderate --goal maintain
  nutrigym goals --sex female --age 30 --weight 60 --height 165 --activity light --goal lose_weight --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoals(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Sex, "sex", "", "male|female")
	cmd.Flags().IntVar(&opts.Age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&opts.Weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "height in cm")
	cmd.Flags().StringVar(&opts.Activity, "activity", string(domain.ActivityModerate), "sedentary|light|moderate|active|very_active")
	cmd.Flags().StringVar(&opts.Goal, "goal", string(domain.GoalMaintain), "lose_weight|maintain|gain_muscle|recomposition|performance")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	for _, name := range []string{"sex", "age", "weight", "height"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runGoals(w io.Writer, opts *GoalsOptions) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}

	in := nutrition.Inputs{
		Sex:      domain.Sex(opts.Sex),
		Age:      opts.Age,
		Weight:   opts.Weight,
		Height:   opts.Height,
		Activity: domain.ActivityLevel(opts.Activity),
		Goal:     domain.Goal(opts.Goal),
	}
	targets, ok := nutrition.Compute(in)
	if !ok {
		return fmt.Errorf("goals: every input must be present, positive and known")
	}

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(targets)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(targets)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Goal\t%s\n", in.Goal.Label())
	fmt.Fprintf(tw, "BMR\t%.0f kcal\n", targets.BMR)
	fmt.Fprintf(tw, "TDEE\t%.0f kcal\n", targets.TDEE)
	fmt.Fprintf(tw, "Calories\t%d kcal\n", targets.CalorieGoal)
	fmt.Fprintf(tw, "Protein\t%d g\n", targets.ProteinGoal)
	fmt.Fprintf(tw, "Carbs\t%d g\n", targets.CarbGoal)
	fmt.Fprintf(tw, "Fat\t%d g\n", targets.FatGoal)
	return tw.Flush()
}
