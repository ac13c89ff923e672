package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which data sources are available",
	Long: `Report which dump files exist in the data directory and whether the
database is reachable. Every source is optional: a missing dump only
zeroes that source's contribution, so this is the place to see what a run
would actually be built from.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type sourceStatus struct {
	File    string `json:"file"`
	Present bool   `json:"present"`
	Bytes   int64  `json:"bytes,omitempty"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputFlags(cfg)

	files := []string{ep.ActivitiesFile, ep.AmendmentsFile, ep.VotesFile, ep.RolesFile, ep.MembersFile}
	statuses := make([]sourceStatus, 0, len(files))
	for _, f := range files {
		st := sourceStatus{File: f}
		if info, err := os.Stat(filepath.Join(cfg.DataDir, f)); err == nil {
			st.Present = true
			st.Bytes = info.Size()
		}
		statuses = append(statuses, st)
	}

	dbOK := true
	db, err := openStore()
	if err != nil {
		dbOK = false
	} else {
		db.Close()
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			DataDir  string         `json:"data_dir"`
			Sources  []sourceStatus `json:"sources"`
			Database bool           `json:"database_ok"`
		}{cfg.DataDir, statuses, dbOK})
	}

	fmt.Println(output.Section("Data sources"))
	fmt.Printf(" data dir: %s\n\n", cfg.DataDir)
	table := output.NewTable("FILE", "STATUS", "SIZE").RightAlign(2)
	for _, st := range statuses {
		status := output.StyleError.Render("missing")
		size := ""
		if st.Present {
			status = output.StyleSuccess.Render("ok")
			size = fmt.Sprintf("%d", st.Bytes)
		}
		table.AddRow(st.File, status, size)
	}
	table.Print()

	if dbOK {
		fmt.Println("\ndatabase: " + output.StyleSuccess.Render("ok"))
	} else {
		fmt.Println("\ndatabase: " + output.StyleError.Render("unavailable"))
	}
	return nil
}
