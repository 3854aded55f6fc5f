// Command collisions fingerprints every segment of a feature matrix, alone
// and with every applicable diacritic, and reports symbols whose feature
// strings collide.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kerem-kaynak/feature-collisions/internal/config"
	"github.com/kerem-kaynak/feature-collisions/pkg/phonology"
)

// errCollisions makes the process exit with status 2 under --fail-on-collision.
var errCollisions = errors.New("feature string collisions found")

type options struct {
	configFile      string
	matrix          string
	catalog         string
	report          string
	targets         []string
	ignore          []string
	cacheSize       int
	verbose         bool
	failOnCollision bool
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "collisions"})

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errCollisions) {
			os.Exit(2)
		}
		logger.Error("analysis failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "collisions",
		Short: "Find IPA symbols whose feature strings collide",
		Long: `collisions loads a feature matrix and a diacritic catalog, builds the
feature string of every segment and of every segment/diacritic combination,
and lists the symbols that share a feature string. It then writes every
(symbol, feature string) pair to a CSV report.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			return run(cmd, logger, cfg, opts.failOnCollision)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./"+config.DefaultFile+" if present)")
	flags.StringVar(&opts.matrix, "matrix", "", "feature matrix CSV")
	flags.StringVar(&opts.catalog, "catalog", "", "diacritic catalog YAML")
	flags.StringVarP(&opts.report, "output", "o", "", "report CSV path")
	flags.StringSliceVarP(&opts.targets, "target", "t", nil, "print the feature sets of these symbols when generated")
	flags.StringSliceVar(&opts.ignore, "ignore-feature", nil, "leave these features out of feature strings")
	flags.IntVar(&opts.cacheSize, "cache-size", 0, "fingerprint cache entries (0 disables)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.failOnCollision, "fail-on-collision", false, "exit with status 2 when collisions are found")

	return cmd
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	flags := cmd.Flags()
	if flags.Changed("matrix") {
		cfg.Matrix = opts.matrix
	}
	if flags.Changed("catalog") {
		cfg.Catalog = opts.catalog
	}
	if flags.Changed("output") {
		cfg.Report = opts.report
	}
	if flags.Changed("target") {
		cfg.Targets = opts.targets
	}
	if flags.Changed("ignore-feature") {
		cfg.IgnoreFeatures = opts.ignore
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = opts.cacheSize
	}
}

func run(cmd *cobra.Command, logger *log.Logger, cfg config.Config, failOnCollision bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pcfg, err := cfg.Phonology()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	pcfg.Observer = phonology.DiagnosticObserver(out, phonology.NewNormalizerFromConfig(pcfg.Normalizers), cfg.Targets)

	logger.Debug("loading data", "matrix", cfg.Matrix, "catalog", cfg.Catalog)
	analyzer, err := phonology.NewAnalyzer(cfg.Matrix, cfg.Catalog, pcfg)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	logger.Debug("data loaded",
		"segments", len(analyzer.Matrix().Rows),
		"features", analyzer.Vocabulary().Len(),
		"diacritics", len(analyzer.Catalog()))
	for _, issue := range analyzer.Issues() {
		logger.Warn("unknown feature ignored", "diacritic", issue.Diacritic, "feature", issue.Feature, "in", issue.Role)
	}

	fmt.Fprintln(out, "Generating basic feature strings")
	fmt.Fprintln(out, "================================")
	basePairs, err := analyzer.BasePass()
	if err != nil {
		return err
	}
	baseCollisions := phonology.FindCollisions(basePairs)
	fmt.Fprintf(out, "\nGenerated %d feature strings\n", len(basePairs))
	phonology.PrintCollisions(out, baseCollisions)

	fmt.Fprintln(out, "\nGenerating diacritic feature strings")
	fmt.Fprintln(out, "================================")
	pairs, err := analyzer.DiacriticPass()
	if err != nil {
		return err
	}
	collisions := phonology.FindCollisions(pairs)
	fmt.Fprintf(out, "\nGenerated %d feature strings\n", len(pairs))
	phonology.PrintCollisions(out, collisions)

	if err := phonology.WriteReportFile(cfg.Report, pairs); err != nil {
		return err
	}
	logger.Info("report written", "path", cfg.Report, "rows", len(pairs))

	if failOnCollision && (len(collisions) > 0 || len(baseCollisions) > 0) {
		return errCollisions
	}
	return nil
}
