package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/output"
)

var rolesUnclassified bool

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show how free-text office titles were classified",
	Long: `Flatten the per-member role trees, derive each office's term and map its
free-text title to a canonical role key.

Titles that match no canonical role stay in the raw records for audit but
never contribute to scoring; use --unclassified to list them.`,
	RunE: runRoles,
}

func init() {
	rolesCmd.Flags().BoolVar(&rolesUnclassified, "unclassified", false, "List distinct unclassified titles")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputFlags(cfg)

	trees, err := ep.LoadRoles(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading roles: %w", err)
	}

	terms := cfg.TermSet()
	records, skipped := aggregate.BuildRoleRecords(trees, terms)

	classified := make(map[ep.CanonicalRole]int)
	unclassified := make(map[string]int)
	for _, r := range records {
		if r.Role == ep.RoleUnclassified {
			unclassified[r.Title]++
			continue
		}
		classified[r.Role]++
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Classified   map[ep.CanonicalRole]int `json:"classified"`
			Unclassified map[string]int           `json:"unclassified"`
			Skipped      int                      `json:"skipped_no_term"`
		}{classified, unclassified, skipped})
	}

	fmt.Println(output.Section("Role classification"))
	table := output.NewTable("CANONICAL ROLE", "COUNT").RightAlign(1)
	for _, role := range ep.CanonicalRoles {
		if classified[role] > 0 {
			table.AddRow(string(role), fmt.Sprintf("%d", classified[role]))
		}
	}
	table.Print()
	fmt.Printf("\n%d entries dropped (no derivable term), %d distinct unclassified titles\n",
		skipped, len(unclassified))

	if rolesUnclassified && len(unclassified) > 0 {
		titles := make([]string, 0, len(unclassified))
		for t := range unclassified {
			titles = append(titles, t)
		}
		sort.Strings(titles)
		fmt.Println(output.Section("Unclassified titles"))
		for _, t := range titles {
			fmt.Printf("  %4d  %s\n", unclassified[t], t)
		}
	}
	return nil
}
