package metrics

import (
	"encoding/csv"
	"isolation/config"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Player1
	Agent2 int // AgentConfig.ID playing Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<timestamp> for the records of one run.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405")
	dir := filepath.Join(baseDir, name, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}
	return &Writer{baseDir: dir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []config.AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Kind,
			strconv.Itoa(c.Depth),
			c.Evaluator,
			strconv.Itoa(c.MaxDepth),
		})
	}
	header := []string{"id", "name", "kind", "depth", "evaluator", "max_depth"}
	return errors.Wrap(w.write("agent_configs.csv", header, rows), "failed to write agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.StartingPlayer.String(),
			r.Winner.String(),
			r.Outcome,
			strconv.Itoa(r.TotalMoves),
			r.StartTime.Format(time.RFC3339Nano),
			r.EndTime.Format(time.RFC3339Nano),
			r.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "outcome", "total_moves", "start_time", "end_time", "duration"}
	return errors.Wrap(w.write("game_records.csv", header, rows), "failed to write game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player.String(),
			strconv.Itoa(r.Move.Row),
			strconv.Itoa(r.Move.Col),
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Cutoffs),
			r.Duration.String(),
			strconv.FormatBool(r.TimedOut),
		})
	}
	header := []string{"game", "step", "player", "row", "col", "depth", "iterations", "nodes", "cutoffs", "duration", "timed_out"}
	return errors.Wrap(w.write("move_records.csv", header, rows), "failed to write move records")
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
