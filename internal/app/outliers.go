package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/output"
	"github.com/openparl/epscore/internal/scoring"
)

var outliersTerm int

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Show IQR outlier bounds per indicator",
	Long: `Compute the interquartile-range outlier bounds for every activity
indicator over a term's cohort: Q1, Q3, the 1.5*IQR fences, and how many
members fall outside them.

This is the audit view of the outlier-based indicator scorer, the
alternative normalization strategy to the fixed caps of 'score'.`,
	RunE: runOutliers,
}

func init() {
	outliersCmd.Flags().IntVar(&outliersTerm, "term", 0, "Term to analyze (default: all configured terms)")
	rootCmd.AddCommand(outliersCmd)
}

// indicatorExtractors maps indicator names to their raw counter, in
// display order.
var indicatorExtractors = []struct {
	name string
	get  func(aggregate.ActivityCounts) float64
}{
	{"speeches", func(c aggregate.ActivityCounts) float64 { return float64(c.Speeches) }},
	{"reports_rapporteur", func(c aggregate.ActivityCounts) float64 { return float64(c.ReportsRapporteur) }},
	{"reports_shadow", func(c aggregate.ActivityCounts) float64 { return float64(c.ReportsShadow) }},
	{"amendments", func(c aggregate.ActivityCounts) float64 { return float64(c.Amendments) }},
	{"questions", func(c aggregate.ActivityCounts) float64 { return float64(c.Questions()) }},
	{"motions", func(c aggregate.ActivityCounts) float64 { return float64(c.AllMotions()) }},
	{"opinions_rapporteur", func(c aggregate.ActivityCounts) float64 { return float64(c.OpinionsRapporteur) }},
	{"opinions_shadow", func(c aggregate.ActivityCounts) float64 { return float64(c.OpinionsShadow) }},
	{"declarations", func(c aggregate.ActivityCounts) float64 { return float64(c.Declarations) }},
	{"explanations", func(c aggregate.ActivityCounts) float64 { return float64(c.Explanations) }},
}

func runOutliers(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputFlags(cfg)

	src, _, err := loadSources(cfg.DataDir)
	if err != nil {
		return err
	}
	terms := cfg.TermSet()
	res, err := aggregate.Run(cmd.Context(), src, terms)
	if err != nil {
		return fmt.Errorf("aggregating: %w", err)
	}

	analyzeTerms := terms.Terms()
	if outliersTerm != 0 {
		analyzeTerms = []ep.Term{ep.Term(outliersTerm)}
	}

	scorer := scoring.NewOutlierScorer()
	for _, term := range analyzeTerms {
		var cohort []aggregate.ActivityCounts
		for k, c := range res.Counts {
			if k.Term == term {
				cohort = append(cohort, c)
			}
		}
		for _, ind := range indicatorExtractors {
			values := make([]float64, len(cohort))
			for i, c := range cohort {
				values[i] = ind.get(c)
			}
			scorer.Bounds(term, ind.name, values)
		}
	}

	stats := scorer.Stats()
	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	fmt.Println(output.Section("Outlier bounds"))
	table := output.NewTable("TERM", "INDICATOR", "Q1", "Q3", "LOWER", "UPPER", "MEMBERS", "CLEAN", "OUTLIERS").
		RightAlign(0, 2, 3, 4, 5, 6, 7, 8)
	for _, st := range stats {
		table.AddRow(
			fmt.Sprintf("%d", st.Term),
			st.Indicator,
			fmt.Sprintf("%.2f", st.Q1),
			fmt.Sprintf("%.2f", st.Q3),
			fmt.Sprintf("%.2f", st.Lower),
			fmt.Sprintf("%.2f", st.Upper),
			fmt.Sprintf("%d", st.Members),
			fmt.Sprintf("%d", st.Clean),
			fmt.Sprintf("%d", st.Outliers),
		)
	}
	table.Print()
	return nil
}
