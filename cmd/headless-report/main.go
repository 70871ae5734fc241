// Command headless-report runs seeded headless sessions under an autopilot
// and prints per-run and aggregate statistics.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
	"github.com/Garsondee/stick-survivor/internal/sim"
)

var (
	runs       int
	frames     int
	seedBase   int64
	seedStep   int64
	configPath string
	dumpLog    bool
	format     string
	verbose    bool
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)
	runStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(1)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	defeatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
	surviveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F"))
)

var rootCmd = &cobra.Command{
	Use:   "headless-report",
	Short: "Run headless Stick Survivor sessions and report the results",
	Long: `headless-report drives seeded sessions with a simple hunting autopilot on a
stepped clock, then prints survival, combat and pickup statistics per run and
across all runs.`,
	RunE: runReport,
}

func init() {
	rootCmd.Flags().IntVar(&runs, "runs", 5, "number of headless runs")
	rootCmd.Flags().IntVar(&frames, "frames", 3600, "frames per run (60 per simulated second)")
	rootCmd.Flags().Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	rootCmd.Flags().Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML session config (defaults when empty)")
	rootCmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	rootCmd.Flags().BoolVar(&dumpLog, "simlog", false, "print every recorded event")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log session lifecycle to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runStats struct {
	runIndex int
	seed     int64
	report   sim.Report

	firstKillFrame   int
	firstDamageFrame int
	firstNightFrame  int
	log              *sim.SimLog
}

func runReport(cmd *cobra.Command, args []string) error {
	if runs <= 0 {
		return errors.New("--runs must be > 0")
	}
	if frames <= 0 {
		return errors.New("--frames must be > 0")
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown --format %q", format)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	out := cmd.OutOrStdout()
	text := format == "text"
	if text {
		fmt.Fprintln(out, titleStyle.Render("=== Headless Survival Report ==="))
		fmt.Fprintf(out, "runs=%d frames=%d seed_base=%d seed_step=%d world=%.0fx%.0f enemies=%d\n\n",
			runs, frames, seedBase, seedStep, cfg.WorldWidth, cfg.WorldHeight, cfg.EnemyCount)
	}

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runOne(cfg, logger, i+1, seed, frames)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		all = append(all, rs)
		if !text {
			continue
		}
		printRun(out, rs)
		if dumpLog {
			fmt.Fprint(out, rs.log.Format())
		}
	}
	if !text {
		return writeYAML(out, all)
	}
	printAggregate(out, all)
	return nil
}

func runOne(cfg config.Config, logger *slog.Logger, runIndex int, seed int64, frames int) (runStats, error) {
	clk := clock.NewManual(time.Unix(0, 0))
	sl := sim.NewSimLog(false)
	s, err := sim.New(cfg,
		sim.WithSeed(seed),
		sim.WithClock(clk),
		sim.WithLogger(logger.With("run", runIndex, "seed", seed)),
		sim.WithSimLog(sl),
	)
	if err != nil {
		return runStats{}, err
	}
	drive := sim.Autopilot(rand.New(rand.NewSource(seed))) // #nosec G404 -- reproducible runs
	report := sim.Run(s, clk, frames, sim.FrameDuration, drive)

	entries := sl.Entries()
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		report:           report,
		firstKillFrame:   firstFrame(entries, "combat", "kill", ""),
		firstDamageFrame: firstFrame(entries, "combat", "hit", "player"),
		firstNightFrame:  firstFrame(entries, "cycle", "night_fell", ""),
		log:              sl,
	}, nil
}

// firstFrame returns the frame of the first entry matching category and
// key, optionally restricted to one entity label, or -1.
func firstFrame(entries []sim.SimLogEntry, category, key, entity string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if entity == "" || e.Entity == entity {
			return e.Frame
		}
	}
	return -1
}

func outcomeText(r sim.Report) string {
	if r.Over {
		return defeatStyle.Render(r.Outcome())
	}
	return surviveStyle.Render(r.Outcome())
}

func printRun(w io.Writer, rs runStats) {
	r := rs.report
	body := fmt.Sprintf("%s %s  %s %d  %s %s\n",
		labelStyle.Render("outcome"), outcomeText(r),
		labelStyle.Render("frames"), r.Frames,
		labelStyle.Render("elapsed"), r.Elapsed.Round(time.Millisecond))
	body += fmt.Sprintf("health=%d kills=%d (enemy=%d pig=%d) coins=%d\n",
		r.Health, r.Kills, r.EnemyKills, r.PigKills, r.Coins)
	body += fmt.Sprintf("damage_taken=%d enemy_attacks=%d respawns=%d nights=%d placement_failures=%d\n",
		r.DamageTaken, r.EnemyAttacks, r.Respawns, r.Nights, r.PlacementFailures)
	body += fmt.Sprintf("pickups: coin=%d health=%d bacon=%d\n",
		r.Pickups[sim.Coin], r.Pickups[sim.Health], r.Pickups[sim.Bacon])
	body += fmt.Sprintf("phase_markers: first_kill=%d first_damage=%d first_night=%d",
		rs.firstKillFrame, rs.firstDamageFrame, rs.firstNightFrame)

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("--- Run %d (seed=%d) ---", rs.runIndex, rs.seed)))
	fmt.Fprintln(w, runStyle.Render(body))
	fmt.Fprintln(w)
}

type aggregate struct {
	runs         int
	survived     int
	avgFrames    float64
	avgKills     float64
	avgCoins     float64
	avgDamage    float64
	avgFirstKill string
}

func summarize(all []runStats) aggregate {
	var totalFrames, totalKills, totalCoins, totalDamage int
	var killFrames []int
	survived := 0
	for _, rs := range all {
		r := rs.report
		totalFrames += r.Frames
		totalKills += r.Kills
		totalCoins += r.Coins
		totalDamage += r.DamageTaken
		if !r.Over {
			survived++
		}
		if rs.firstKillFrame >= 0 {
			killFrames = append(killFrames, rs.firstKillFrame)
		}
	}
	n := len(all)
	return aggregate{
		runs:         n,
		survived:     survived,
		avgFrames:    avg(totalFrames, n),
		avgKills:     avg(totalKills, n),
		avgCoins:     avg(totalCoins, n),
		avgDamage:    avg(totalDamage, n),
		avgFirstKill: avgFrameString(killFrames),
	}
}

func printAggregate(w io.Writer, all []runStats) {
	a := summarize(all)
	fmt.Fprintln(w, titleStyle.Render("=== Aggregate ==="))
	fmt.Fprintf(w, "runs=%d survived=%d (%.0f%%)\n", a.runs, a.survived, 100*avg(a.survived, a.runs))
	fmt.Fprintf(w, "avg_per_run: frames=%.1f kills=%.1f coins=%.1f damage_taken=%.1f\n",
		a.avgFrames, a.avgKills, a.avgCoins, a.avgDamage)
	fmt.Fprintf(w, "avg_first_kill_frame=%s\n", a.avgFirstKill)
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func avgFrameString(frames []int) string {
	if len(frames) == 0 {
		return "n/a"
	}
	sum := 0
	for _, f := range frames {
		sum += f
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(frames)))
}

type runSummary struct {
	Run          int            `yaml:"run"`
	Seed         int64          `yaml:"seed"`
	Outcome      string         `yaml:"outcome"`
	Frames       int            `yaml:"frames"`
	Elapsed      string         `yaml:"elapsed"`
	Health       int            `yaml:"health"`
	Kills        int            `yaml:"kills"`
	Coins        int            `yaml:"coins"`
	DamageTaken  int            `yaml:"damage_taken"`
	Nights       int            `yaml:"nights"`
	Pickups      map[string]int `yaml:"pickups"`
	FirstKill    int            `yaml:"first_kill_frame"`
	FirstDamage  int            `yaml:"first_damage_frame"`
	FirstNight   int            `yaml:"first_night_frame"`
	LoggedEvents int            `yaml:"logged_events"`
}

func summaryOf(rs runStats) runSummary {
	r := rs.report
	pickups := make(map[string]int, len(r.Pickups))
	for kind, n := range r.Pickups {
		pickups[kind.String()] = n
	}
	logged := 0
	if rs.log != nil {
		logged = len(rs.log.Entries())
	}
	return runSummary{
		Run:          rs.runIndex,
		Seed:         rs.seed,
		Outcome:      r.Outcome(),
		Frames:       r.Frames,
		Elapsed:      r.Elapsed.Round(time.Millisecond).String(),
		Health:       r.Health,
		Kills:        r.Kills,
		Coins:        r.Coins,
		DamageTaken:  r.DamageTaken,
		Nights:       r.Nights,
		Pickups:      pickups,
		FirstKill:    rs.firstKillFrame,
		FirstDamage:  rs.firstDamageFrame,
		FirstNight:   rs.firstNightFrame,
		LoggedEvents: logged,
	}
}

func writeYAML(w io.Writer, all []runStats) error {
	summaries := make([]runSummary, 0, len(all))
	for _, rs := range all {
		summaries = append(summaries, summaryOf(rs))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]runSummary{"runs": summaries}); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
