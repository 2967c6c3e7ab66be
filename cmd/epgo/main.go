package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estateplan/epgo/internal/calculation"
	"github.com/estateplan/epgo/internal/catalog"
	"github.com/estateplan/epgo/internal/domain"
	"github.com/estateplan/epgo/internal/output"
	"github.com/estateplan/epgo/internal/runstore"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "epgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "epgo",
	Short: "Estate Scenario Planning CLI",
	Long:  "Deterministic what-if simulator for estate planning decision scenarios",
}

// loadCatalog builds the catalog, merging a user scenarios file when given.
func loadCatalog(cmd *cobra.Command) *catalog.Catalog {
	scenariosFile, _ := cmd.Flags().GetString("scenarios")
	if scenariosFile != "" {
		cat, err := catalog.LoadFile(scenariosFile)
		if err != nil {
			log.Fatal(err)
		}
		return cat
	}

	cat, err := catalog.Builtin()
	if err != nil {
		log.Fatal(err)
	}
	return cat
}

// openStore opens the durable run store at the configured path.
func openStore(cmd *cobra.Command) (*runstore.Store, *runstore.SQLiteBackend) {
	path, _ := cmd.Flags().GetString("store")
	backend, err := runstore.NewSQLiteBackend(path)
	if err != nil {
		log.Fatal(err)
	}
	store, err := runstore.New(backend)
	if err != nil {
		backend.Close()
		log.Fatal(err)
	}
	return store, backend
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog(cmd)

		fmt.Printf("%-24s %-34s %-20s %s\n", "ID", "Title", "Category", "Outcomes")
		fmt.Println(strings.Repeat("-", 92))
		for _, sd := range cat.List() {
			fmt.Printf("%-24s %-34s %-20s %d\n", sd.ID, sd.Title, sd.Category, len(sd.OutcomeIDs))
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show [scenario-id]",
	Short: "Show a scenario's variables and outcome strategies",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog(cmd)

		sd, err := cat.Get(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s (%s)\n", sd.Title, sd.Category)
		fmt.Println(sd.Description)
		fmt.Println("\nVariables:")
		for _, vs := range sd.Variables {
			fmt.Printf("  %-20s %-12s default %s\n", vs.Name, vs.Type, output.FormatVariable(vs, vs.Default))
		}
		fmt.Println("\nOutcome strategies:")
		for _, id := range sd.OutcomeIDs {
			od, err := cat.DescribeOutcome(id)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("  %-20s %-8s %-10s %s\n", od.Label, od.RiskTier, od.TimeHorizon, od.Description)
		}
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [scenario-id]",
	Short: "Run a scenario calculation",
	Long: "Computes projected values for every outcome strategy the scenario declares,\n" +
		"ranks them by suitability score and selects a recommended outcome.\n" +
		"Unset variables take their catalog defaults.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog(cmd)

		sd, err := cat.Get(args[0])
		if err != nil {
			log.Fatal(err)
		}

		vars := sd.DefaultAssignment()
		overrides, _ := cmd.Flags().GetStringArray("set")
		for _, override := range overrides {
			parts := strings.SplitN(override, "=", 2)
			if len(parts) != 2 {
				log.Fatalf("invalid --set value, expected 'name=value', got: %s", override)
			}
			name := strings.TrimSpace(parts[0])
			spec, ok := sd.Variable(name)
			if !ok {
				log.Fatalf("scenario %s has no variable %q", sd.ID, name)
			}
			value, err := spec.Parse(parts[1])
			if err != nil {
				log.Fatal(err)
			}
			vars[name] = value
		}

		engine := calculation.NewEngine(cat)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		outcomes, err := engine.ComputeOutcomes(sd.ID, vars)
		if err != nil {
			log.Fatal(err)
		}

		ranked := calculation.Rank(outcomes)
		best, err := calculation.SelectBest(ranked)
		if err != nil {
			log.Fatal(err)
		}

		descriptors := make(map[string]domain.OutcomeDescriptor, len(sd.OutcomeIDs))
		for _, id := range sd.OutcomeIDs {
			if od, descErr := cat.DescribeOutcome(id); descErr == nil {
				descriptors[id] = od
			}
		}

		resultSet := &output.ResultSet{
			Scenario:    sd,
			Variables:   vars,
			Outcomes:    ranked,
			Best:        best,
			Descriptors: descriptors,
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unknown output format: %s", outputFormat)
		}
		text, err := formatter.Format(resultSet)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)

		if save, _ := cmd.Flags().GetBool("save"); save {
			store, backend := openStore(cmd)
			defer backend.Close()

			run, err := store.Save(sd.ID, vars, ranked, best)
			if err != nil {
				// Save failures are non-fatal: results above are already
				// printed and can be saved again.
				log.Printf("save failed: %v", err)
				return
			}
			fmt.Printf("\nSaved run %s\n", run.ID)
		}
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved runs, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		store, backend := openStore(cmd)
		defer backend.Close()

		fmt.Print(output.FormatRunTable(store.List()))
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a saved run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, backend := openStore(cmd)
		defer backend.Close()

		if err := store.Delete(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Deleted run %s\n", args[0])
	},
}

func main() {
	rootCmd.PersistentFlags().String("scenarios", "", "YAML file with additional scenario definitions")
	rootCmd.PersistentFlags().String("store", "epgo-runs.db", "Path to the run store database")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	calculateCmd.Flags().StringArray("set", nil, "Override a variable, e.g. --set trustAssets=2500000")
	calculateCmd.Flags().String("format", "table", "Output format (table, json, csv)")
	calculateCmd.Flags().Bool("save", false, "Persist the run to the run store")

	runsCmd.AddCommand(runsDeleteCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
