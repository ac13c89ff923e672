package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/output"
)

var aggregateSave bool

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Build per-member activity and role counts from the dumps",
	Long: `Read the activity, amendment, vote and role dumps, classify every record
into a parliamentary term and build per-(member, term) counters.

Counts are rebuilt from scratch; re-running on the same dumps produces the
same result. Records that cannot be dated or fall outside every term
window are skipped and reported, not treated as errors.`,
	RunE: runAggregate,
}

func init() {
	aggregateCmd.Flags().BoolVar(&aggregateSave, "save", true, "Persist the run to the database")
	rootCmd.AddCommand(aggregateCmd)
}

// aggregateOutput is the JSON-serializable output for the aggregate command.
type aggregateOutput struct {
	RunID      string          `json:"run_id,omitempty"`
	Keys       int             `json:"count_keys"`
	RoleKeys   int             `json:"role_count_keys"`
	RoleAudit  int             `json:"role_records"`
	TotalVotes map[string]int  `json:"total_votes_per_term"`
	Stats      aggregate.Stats `json:"skipped"`
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputFlags(cfg)

	src, roster, err := loadSources(cfg.DataDir)
	if err != nil {
		return err
	}

	terms := cfg.TermSet()
	res, err := aggregate.Run(cmd.Context(), src, terms)
	if err != nil {
		return fmt.Errorf("aggregating: %w", err)
	}

	out := aggregateOutput{
		Keys:       len(res.Counts),
		RoleKeys:   len(res.RoleCounts),
		RoleAudit:  len(res.RoleRecords),
		TotalVotes: make(map[string]int),
		Stats:      res.Stats,
	}
	for term, total := range res.Attendance.TotalVotes {
		out.TotalVotes[fmt.Sprintf("%d", term)] = total
	}

	if aggregateSave {
		db, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		runID, err := db.CreateRun("aggregate", appVersion)
		if err != nil {
			return fmt.Errorf("creating run: %w", err)
		}
		if err := db.SaveAggregation(runID, res); err != nil {
			return fmt.Errorf("saving aggregation: %w", err)
		}
		if len(roster) > 0 {
			if err := db.SaveRoster(roster); err != nil {
				return fmt.Errorf("saving roster: %w", err)
			}
		}
		out.RunID = runID
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Println(output.Section("Aggregation"))
	table := output.NewTable("TERM", "MEMBERS", "VOTES").RightAlign(1, 2)
	for _, term := range terms.Terms() {
		members := 0
		for k := range res.Counts {
			if k.Term == term {
				members++
			}
		}
		table.AddRow(
			fmt.Sprintf("%d", term),
			fmt.Sprintf("%d", members),
			fmt.Sprintf("%d", res.Attendance.TotalVotes[term]),
		)
	}
	table.Print()

	fmt.Printf("\nskipped: %d bundle items, %d amendments, %d votes, %d role entries\n",
		res.Stats.BundleItems, res.Stats.Amendments, res.Stats.Votes, res.Stats.RoleEntries)
	if out.RunID != "" {
		fmt.Println(output.StyleMuted.Render("run " + out.RunID))
	}
	return nil
}
