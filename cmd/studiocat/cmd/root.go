package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"studiocat/lib/configutil"
	"studiocat/lib/scrapers/imdb"
	"studiocat/lib/serviceutil"
	"studiocat/lib/telemetry"
	"studiocat/services/catalog"

	"github.com/spf13/cobra"
)

// first year with a releasable film
const earliestYear = 1888

var errUsage = errors.New("usage error")

type Config struct {
	BaseUrl  string              `json:"base_url"`
	MaxItems int                 `json:"max_items"`
	Studios  map[string][]string `json:"studios"`
}

var (
	fromYear   int
	toYear     int
	output     string
	appendMode bool
	rawMode    bool
	tableMode  bool
	quiet      bool
	verbose    bool
	maxItems   int
)

var rootCmd = &cobra.Command{
	Use:   "studiocat <studio>",
	Short: "Fetches the title catalog registered to a studio and emits it as tab-delimited records.",
	Long: `Fetches the title catalog registered to a studio and emits it as
tab-delimited records, one title per line. The studio may be a known
name from the built-in table (some of which expand to several company
records), a literal company code like co0086397, or any free-form
company name the search service accepts.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: expected exactly one studio name", errUsage)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVar(&fromYear, "from", earliestYear, "Start of the release date range (year).")
	rootCmd.Flags().IntVar(&toYear, "to", 0, "End of the release date range (year, defaults to the current year).")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Write records to this file instead of stdout.")
	rootCmd.Flags().BoolVarP(&appendMode, "append", "a", false, "Append to the output file and drop the rank column.")
	rootCmd.Flags().BoolVarP(&rawMode, "raw", "r", false, "Skip record reshaping, emit markup-stripped text as-is.")
	rootCmd.Flags().BoolVar(&tableMode, "table", false, "Render records as a table for human inspection.")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress messages.")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging/instrumentation.")
	rootCmd.Flags().IntVar(&maxItems, "max-items", 0, "Abort when a studio declares this many titles or more (default 20000).")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}

func Execute() {
	ctx, interrupted := serviceutil.SignalContext()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	switch {
	case interrupted() || errors.Is(err, context.Canceled):
		slog.Error("interrupted, no output was produced")
		os.Exit(130)
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
		os.Exit(2)
	case errors.Is(err, catalog.ErrTooManyItems):
		slog.Error(err.Error())
		os.Exit(3)
	default:
		serviceutil.Fatal("run failed", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	telemetry.InitSlog(verbose, quiet)

	tel, err := telemetry.SetupFromEnv(cmd.Context(), "studiocat")
	if err != nil && !errors.Is(err, telemetry.ErrNoTelemetryConfig) {
		return err
	}
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(cmd.Context())
	}

	cfg, err := configutil.ReadConfig[Config]("studiocat.json5")
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	currentYear := time.Now().Year()
	if toYear == 0 {
		toYear = currentYear
	}
	switch {
	case fromYear < earliestYear:
		return fmt.Errorf("%w: --from must be %d or later", errUsage, earliestYear)
	case toYear > currentYear:
		return fmt.Errorf("%w: --to cannot be past the current year", errUsage)
	case fromYear > toYear:
		return fmt.Errorf("%w: --from cannot be past --to", errUsage)
	case rawMode && tableMode:
		return fmt.Errorf("%w: --raw and --table are mutually exclusive", errUsage)
	case maxItems < 0:
		return fmt.Errorf("%w: --max-items cannot be negative", errUsage)
	}
	if maxItems == 0 {
		maxItems = cfg.MaxItems
	}

	client, err := imdb.NewClient(imdb.ClientOptions{BaseUrl: cfg.BaseUrl})
	if err != nil {
		return err
	}

	runner := catalog.Runner{
		Client:   client,
		Resolver: imdb.NewResolver(cfg.Studios),
	}
	result, err := runner.Run(cmd.Context(), catalog.Query{
		Studio:   args[0],
		FromYear: fromYear,
		ToYear:   toYear,
		MaxItems: maxItems,
		Raw:      rawMode,
	})
	if err != nil {
		return err
	}

	return catalog.Write(result, catalog.WriteOptions{
		Destination: output,
		Append:      appendMode,
		StripRank:   appendMode,
		Table:       tableMode,
	})
}
