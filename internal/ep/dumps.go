package ep

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
)

// Dump file names inside the data directory. Every file is optional; a
// missing file means that source contributes nothing to the run.
const (
	ActivitiesFile = "activities.json"
	AmendmentsFile = "amendments.json"
	VotesFile      = "votes.jsonl"
	RolesFile      = "roles.json"
	MembersFile    = "members.json"
)

// LoadMemberActivities reads the per-MEP activity bundles from dir.
// A missing file returns (nil, nil).
func LoadMemberActivities(dir string) ([]MemberActivity, error) {
	var bundles []MemberActivity
	if err := loadJSON(filepath.Join(dir, ActivitiesFile), &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// LoadAmendments reads the amendment dump from dir. A missing file
// returns (nil, nil).
func LoadAmendments(dir string) ([]Amendment, error) {
	var ams []Amendment
	if err := loadJSON(filepath.Join(dir, AmendmentsFile), &ams); err != nil {
		return nil, err
	}
	return ams, nil
}

// LoadRoles reads the per-MEP role trees from dir. A missing file returns
// (nil, nil).
func LoadRoles(dir string) ([]MemberRoles, error) {
	var roles []MemberRoles
	if err := loadJSON(filepath.Join(dir, RolesFile), &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// LoadRoster reads the member roster from dir. A missing file returns an
// empty roster; scoring output is simply not enriched.
func LoadRoster(dir string) (Roster, error) {
	var members []Member
	if err := loadJSON(filepath.Join(dir, MembersFile), &members); err != nil {
		return nil, err
	}
	roster := make(Roster, len(members))
	for _, m := range members {
		roster[m.ID] = m
	}
	return roster, nil
}

// LoadVotes reads the roll-call vote dump, one JSON object per line. The
// dump is by far the largest input, so it is streamed line by line;
// malformed lines are skipped and counted, never fatal. Returns the votes
// and the number of skipped lines. A missing file returns (nil, 0, nil).
func LoadVotes(dir string) ([]Vote, int, error) {
	f, err := os.Open(filepath.Join(dir, VotesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	defer f.Close()

	var (
		votes   []Vote
		skipped int
	)
	scanner := bufio.NewScanner(f)
	// Individual vote records can run long once every ballot is inlined.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var v Vote
		if err := json.Unmarshal(line, &v); err != nil {
			skipped++
			continue
		}
		votes = append(votes, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return votes, skipped, nil
}

// loadJSON unmarshals one JSON file into out, treating a missing file as
// empty input.
func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}
