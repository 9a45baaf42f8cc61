package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/internal/resolve"
	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
	"github.com/discarr/discarr/pkg/upcdb"
)

var scanAuto bool

var scanCmd = &cobra.Command{
	Use:   "scan <barcode>",
	Short: "Resolve a disc barcode against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanAuto, "auto", false, "Commit the best candidate without confirmation")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	barcode := strings.TrimSpace(args[0])
	if barcode == "" {
		return fmt.Errorf("empty barcode")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	resolver := buildResolver(e)
	ctx := cmd.Context()

	var outcome *resolve.Outcome
	if scanAuto {
		outcome, err = resolver.ResolveAutonomous(ctx, barcode)
	} else {
		outcome, err = resolver.ResolveInteractive(ctx, barcode)
	}
	if err != nil {
		return err
	}

	if outcome.Status != resolve.StatusNeedsConfirmation {
		printOutcome(outcome)
		return nil
	}

	choice, ok := promptChoice(outcome.Candidates)
	if !ok {
		fmt.Println("Skipped; resolution left pending.")
		return nil
	}

	confirmed, err := resolver.Confirm(ctx, barcode, choice)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	printOutcome(confirmed)
	return nil
}

// buildResolver wires the pipeline the same way the daemon does.
func buildResolver(e *env) *resolve.Resolver {
	upcOpts := []upcdb.Option{
		upcdb.WithLogger(e.logger),
		upcdb.WithRetryPolicy(upcdb.RetryPolicy{
			MaxAttempts:    e.cfg.UPC.MaxAttempts,
			RateLimitDelay: e.cfg.UPC.RateLimitDelay.Std(),
			TransportDelay: e.cfg.UPC.TransportDelay.Std(),
		}),
	}
	if e.cfg.UPC.URL != "" {
		upcOpts = append(upcOpts, upcdb.WithBaseURL(e.cfg.UPC.URL))
	}

	return resolve.New(
		e.store,
		upcdb.NewClient(upcOpts...),
		radarr.NewClient(e.cfg.Radarr.URL, e.cfg.Radarr.APIKey, radarr.WithLogger(e.logger)),
		sonarr.NewClient(e.cfg.Sonarr.URL, e.cfg.Sonarr.APIKey, sonarr.WithLogger(e.logger)),
		resolve.Config{
			MovieRoot:     e.cfg.Radarr.Root,
			SeriesRoot:    e.cfg.Sonarr.Root,
			MovieProfile:  e.cfg.Radarr.QualityProfile,
			SeriesProfile: e.cfg.Sonarr.QualityProfile,
			ConfirmTTL:    e.cfg.Resolution.ConfirmTTL.Std(),
		},
		e.logger,
	)
}

func printOutcome(o *resolve.Outcome) {
	switch o.Status {
	case resolve.StatusToggled:
		fmt.Printf("Toggled: %q now has_physical=%v\n", o.Item.Title, o.Item.HasPhysical)
	case resolve.StatusUpdated:
		fmt.Printf("Updated: %q marked as held on disc\n", o.Item.Title)
	case resolve.StatusAdded:
		fmt.Printf("Added: %q (%d) to the catalog\n", o.Item.Title, o.Item.Year)
	case resolve.StatusNotFound:
		fmt.Printf("Not found: %v\n", o.Reason)
	default:
		fmt.Printf("Outcome: %s\n", o.Status)
	}
}

// promptChoice renders the candidate sets and reads a selection from stdin.
// Returns ok=false when the user skips.
func promptChoice(set *resolve.CandidateSet) (resolve.Choice, bool) {
	fmt.Printf("Scanned %q -> %q", set.Barcode, set.CleanTitle)
	if set.Year > 0 {
		fmt.Printf(" (%d)", set.Year)
	}
	fmt.Printf(", guessed %s\n", set.GuessedType)

	type option struct {
		choice resolve.Choice
		label  string
	}
	var options []option
	for _, m := range set.Movies {
		options = append(options, option{
			choice: resolve.Choice{Type: catalog.TypeMovie, ExternalID: m.TMDBID},
			label:  fmt.Sprintf("movie: %s (%d) rating %.1f", m.Title, m.Year, m.Ratings.Value),
		})
	}
	for _, s := range set.Series {
		options = append(options, option{
			choice: resolve.Choice{Type: catalog.TypeSeries, ExternalID: s.TVDBID},
			label:  fmt.Sprintf("series: %s (%d) %d seasons", s.Title, s.Year, s.SeasonCount()),
		})
	}

	rows := make([][]string, 0, len(options))
	for i, opt := range options {
		rows = append(rows, []string{strconv.Itoa(i + 1), opt.label})
	}
	renderTable([]string{"#", "Candidate"}, rows)

	fmt.Print("Select a candidate (0 to skip): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return resolve.Choice{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(options) {
		return resolve.Choice{}, false
	}
	return options[n-1].choice, true
}
