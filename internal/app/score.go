package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/output"
	"github.com/openparl/epscore/internal/scoring"
)

var (
	scoreTerm     int
	scoreTop      int
	scoreFromDB   bool
	scoreSave     bool
	scoreTiebreak string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute and rank composite scores for a term",
	Long: `Score every member of a term's cohort across the four axes (legislative
production, control & transparency, engagement & presence, institutional
roles) and rank them by the weighted composite, normalized to 0-100
against the cohort's best score.

With --from-db the counts come from the latest saved aggregation run
instead of re-reading the dumps.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().IntVar(&scoreTerm, "term", 0, "Term to score (default: all configured terms)")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 25, "Number of rows to display (0 = all)")
	scoreCmd.Flags().BoolVar(&scoreFromDB, "from-db", false, "Score from the latest saved aggregation run")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist scores to the database")
	scoreCmd.Flags().StringVar(&scoreTiebreak, "tiebreak", "published", "Tie-break order: published (score, speeches, name) or score")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputFlags(cfg)

	var less scoring.Comparator
	switch scoreTiebreak {
	case "published":
		less = scoring.PublishedOrder
	case "score":
		less = scoring.ByFinalScore
	default:
		return fmt.Errorf("unknown tiebreak %q", scoreTiebreak)
	}

	terms := cfg.TermSet()

	var (
		counts     map[aggregate.Key]aggregate.ActivityCounts
		roleCounts map[aggregate.Key]aggregate.RoleCounts
		att        aggregate.Attendance
		roster     ep.Roster
		runID      string
	)

	if scoreFromDB {
		db, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		run, err := db.LatestRun()
		if err != nil {
			return fmt.Errorf("reading latest run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("no aggregation run in the database; run 'epscore aggregate' first")
		}
		runID = run.ID
		if counts, err = db.LoadCounts(run.ID); err != nil {
			return fmt.Errorf("loading counts: %w", err)
		}
		if roleCounts, err = db.LoadRoleCounts(run.ID); err != nil {
			return fmt.Errorf("loading role counts: %w", err)
		}
		if att, err = db.LoadAttendance(run.ID); err != nil {
			return fmt.Errorf("loading attendance: %w", err)
		}
		if roster, err = db.LoadRoster(); err != nil {
			return fmt.Errorf("loading roster: %w", err)
		}
	} else {
		src, r, err := loadSources(cfg.DataDir)
		if err != nil {
			return err
		}
		res, err := aggregate.Run(cmd.Context(), src, terms)
		if err != nil {
			return fmt.Errorf("aggregating: %w", err)
		}
		counts = res.Counts
		roleCounts = res.RoleCounts
		att = res.Attendance
		roster = r
	}

	scoreTerms := terms.Terms()
	if scoreTerm != 0 {
		scoreTerms = []ep.Term{ep.Term(scoreTerm)}
	}

	// Terms share no state, so they score concurrently; each term's
	// cohort reductions stay inside its own ScoreTerm call.
	engine := scoring.NewEngine(cfg.ScoringConfig())
	byTerm := make(map[ep.Term][]scoring.Result, len(scoreTerms))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(cmd.Context())
	for _, term := range scoreTerms {
		term := term
		g.Go(func() error {
			cohort := buildCohort(term, counts, roleCounts, att, roster)
			results := engine.ScoreTerm(term, cohort, less)
			mu.Lock()
			byTerm[term] = results
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if scoreSave {
		db, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
		if runID == "" {
			if runID, err = db.CreateRun("score", appVersion); err != nil {
				return fmt.Errorf("creating run: %w", err)
			}
		}
		for _, term := range scoreTerms {
			if err := db.SaveScores(runID, byTerm[term]); err != nil {
				return fmt.Errorf("saving scores for term %d: %w", term, err)
			}
		}
	}

	if flagJSON {
		ordered := make(map[string][]scoring.Result, len(byTerm))
		for term, results := range byTerm {
			ordered[fmt.Sprintf("%d", term)] = results
		}
		return json.NewEncoder(os.Stdout).Encode(ordered)
	}

	sort.Slice(scoreTerms, func(i, j int) bool { return scoreTerms[i] < scoreTerms[j] })
	for _, term := range scoreTerms {
		printRanking(term, byTerm[term])
	}
	return nil
}

func printRanking(term ep.Term, results []scoring.Result) {
	fmt.Println(output.Section(fmt.Sprintf("Term %d ranking", term)))
	if len(results) == 0 {
		fmt.Println(output.StyleMuted.Render("no data for this term"))
		return
	}

	rows := results
	if scoreTop > 0 && len(rows) > scoreTop {
		rows = rows[:scoreTop]
	}

	table := output.NewTable("RANK", "MEMBER", "COUNTRY", "GROUP", "LEG", "CTRL", "ENG", "ROLE", "SCORE").
		RightAlign(0, 4, 5, 6, 7, 8)
	for _, r := range rows {
		name := r.FullName
		if name == "" {
			name = fmt.Sprintf("mep-%d", r.MemberID)
		}
		table.AddRow(
			fmt.Sprintf("%d", r.Rank),
			name,
			r.Country,
			r.Group,
			fmt.Sprintf("%.2f", r.Axes.LegislativeProduction),
			fmt.Sprintf("%.2f", r.Axes.ControlTransparency),
			fmt.Sprintf("%.2f", r.Axes.EngagementPresence),
			fmt.Sprintf("%.2f", r.Axes.InstitutionalRoles),
			fmt.Sprintf("%.1f", r.FinalScore),
		)
	}
	table.Print()

	if len(rows) > 0 {
		fmt.Printf("\n best: %s\n", output.ScoreBar(rows[0].FinalScore, 24))
	}
}
