// Command klondikesolve is the CLI entry point for the Klondike
// solver: it parses a deck file (or shuffles a fresh deal), runs the
// IDA* search, prints the banner, progress, result, and timing lines,
// and then waits for a keypress before exiting.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shlomif/KlondikeSolver/internal/pack"
	"github.com/shlomif/KlondikeSolver/internal/report"
	"github.com/shlomif/KlondikeSolver/internal/search"
	"github.com/shlomif/KlondikeSolver/internal/solitaire"
	"github.com/shlomif/KlondikeSolver/internal/solverconfig"
	"github.com/shlomif/KlondikeSolver/internal/solverstore"
)

var (
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	timingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("klondikesolve", flag.ContinueOnError)
	deckPath := fs.String("deck", "deck.txt", "deck file to load (156 digits, three per card)")
	seed := fs.Int("seed", -1, "shuffle a fresh deal with this seed instead of loading -deck")
	configPath := fs.String("config", "", "solver config file (defaults to solverconfig.Path())")
	maxBound := fs.Int("max-bound", 0, "override the configured IDA* depth cap (0 = use config)")
	quiet := fs.Bool("quiet", false, "suppress per-iteration progress lines")
	verbose := fs.Bool("verbose", false, "print the dealt layout and heuristic before solving")
	if err := fs.Parse(args); err != nil {
		return waitKey()
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = solverconfig.Path()
	}
	cfg, err := solverconfig.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "klondikesolve: load config: %v\n", err)
		return waitKey()
	}
	if *maxBound > 0 {
		cfg.MaxBound = *maxBound
	}

	g := solitaire.NewGame()
	var deckDigits string
	if *seed >= 0 || cfg.Seed >= 0 {
		s := *seed
		if s < 0 {
			s = cfg.Seed
		}
		used := g.Shuffle(s)
		deckDigits = fmt.Sprintf("shuffle:%d", used)
	} else {
		data, err := os.ReadFile(*deckPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "klondikesolve: read deck file: %v\n", err)
			return waitKey()
		}
		deckDigits = solitaire.ExtractDigits(data)
		if err := g.Load(deckDigits); err != nil {
			fmt.Fprintf(os.Stderr, "klondikesolve: %v\n", err)
			return waitKey()
		}
	}

	print := func(style lipgloss.Style, text string) {
		fmt.Println(style.Render(text))
	}

	print(bannerStyle, "Klondike Solver")
	if *verbose || cfg.Verbose {
		fmt.Print(g.String())
	}

	onProgress := func(p search.Progress) {
		if *quiet {
			return
		}
		if p.Reopen {
			print(progressStyle, fmt.Sprintf(
				"Reopening: %d OpenPrev: %d Open: %d-%d Closed: %d",
				p.Bound, p.OpenPrev, p.Open, p.Top, p.Closed))
			return
		}
		print(progressStyle, fmt.Sprintf(
			"Depth: %d Open: %d-%d Closed: %d Foundation: %d",
			p.Depth, p.Open, p.Top, p.Closed, p.Foundation))
	}

	start := time.Now()
	result := search.Solve(g, g.MinWinAt(), cfg.MaxBound, onProgress)
	elapsed := time.Since(start)

	if result.Won {
		print(resultStyle, fmt.Sprintf("Solved in %d moves: %s", result.Cost, pack.Encode(result.Moves)))
	} else {
		print(resultStyle, fmt.Sprintf("No solution found; best foundation count %d/52", result.FoundationCount))
	}
	print(timingStyle, fmt.Sprintf("%d ms", elapsed.Milliseconds()))

	recordResult(deckDigits, result, elapsed)

	return waitKey()
}

// waitKey blocks on the exit prompt and always yields exit status 0:
// failures along the way are reported to stderr, never through the
// exit code. A prompt that cannot run is reported the same way.
func waitKey() int {
	p := tea.NewProgram(report.New("Press any key to exit..."))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "klondikesolve: %v\n", err)
	}
	return 0
}

// recordResult persists the run's outcome to the best-result-per-deck
// store. A store-open failure is non-fatal: run history is a
// convenience, never load-bearing for a solve already in hand.
func recordResult(deckDigits string, result search.Result, elapsed time.Duration) {
	store, err := solverstore.Open()
	if err != nil {
		return
	}
	defer store.Close()

	best := solverstore.Best{
		Moves:      result.Cost,
		Duration:   elapsed,
		Foundation: result.FoundationCount,
	}
	_, _ = store.Record(solverstore.Fingerprint(deckDigits), best)
}
