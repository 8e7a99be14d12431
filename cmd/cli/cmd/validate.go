package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aegirsim/missile-simulations/cmd/intercept/config"
	"github.com/aegirsim/missile-simulations/pkg/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and scenario files",
	Long:  `Validate run configuration and scenario YAML files before use`,
	RunE:  validateFiles,
}

func init() {
	validateCmd.Flags().StringP("config-file", "c", "", "run configuration YAML to validate")
	validateCmd.Flags().StringP("scenario-file", "f", "", "scenario YAML to validate")
}

func validateFiles(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config-file")
	scenarioPath, _ := cmd.Flags().GetString("scenario-file")

	if configPath == "" && scenarioPath == "" {
		return fmt.Errorf("nothing to validate, pass --config-file and/or --scenario-file")
	}

	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}
		logger.Successf("Configuration %s is valid", configPath)
		logger.Info(cfg.String())
	}

	if scenarioPath != "" {
		sc, err := config.LoadScenario(scenarioPath)
		if err != nil {
			return fmt.Errorf("scenario invalid: %w", err)
		}
		logger.Successf("Scenario %s is valid", scenarioPath)
		printScenario(sc)
	}

	return nil
}

func printScenario(sc *config.Scenario) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tID\tPOSITION (m)")
	_, _ = fmt.Fprintln(w, "----\t--\t------------")

	for _, m := range sc.Missiles {
		_, _ = fmt.Fprintf(w, "missile\t%s\t(%.0f, %.0f, %.0f)\n", m.ID, m.Position.X, m.Position.Y, m.Position.Z)
	}
	for _, it := range sc.Interceptors {
		_, _ = fmt.Fprintf(w, "interceptor\t%s\t(%.0f, %.0f, %.0f)\n", it.ID, it.Position.X, it.Position.Y, it.Position.Z)
	}
	for _, r := range sc.Radars {
		_, _ = fmt.Fprintf(w, "radar\t%s\t(%.0f, %.0f, %.0f)\n", r.ID, r.Position.X, r.Position.Y, r.Position.Z)
	}

	_ = w.Flush()
}
