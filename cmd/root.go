package cmd

import (
	"context"
	"math"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
	"github.com/kitchen-sim/kitchen-sim/kitchen/client"
)

var (
	// CLI flags for the problem source and reporting sink
	endpoint string // Challenge server endpoint
	auth     string // Authentication token
	name     string // Problem name (optional)
	seed     int64  // Problem seed (random if zero)
	offline  bool   // Synthesize the problem locally instead of fetching it
	count    int    // Number of synthetic orders in offline mode
	logLevel string // Log verbosity level

	// CLI flags for run parameters; shelf capacities come from --storage-config
	rateMs        int    // Milliseconds between placements
	minPickupS    int    // Minimum pickup delay in seconds
	maxPickupS    int    // Maximum pickup delay in seconds
	storageConfig string // Optional yaml file with shelf capacities
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "kitchen-sim",
	Short: "Kitchen order-fulfillment shelf simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch a problem, run the shelf simulation, and submit the action log",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := kitchen.DefaultConfig()
		if storageConfig != "" {
			if err := LoadStorageConfig(storageConfig, &cfg); err != nil {
				logrus.Fatalf("Could not load storage config %s: %v", storageConfig, err)
			}
		}
		cfg.RateMs = rateMs
		cfg.MinPickupS = minPickupS
		cfg.MaxPickupS = maxPickupS
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		if seed == 0 {
			seed = rand.Int63n(math.MaxInt64)
			logrus.Infof("No seed given, using seed=%d", seed)
		}
		rng := kitchen.NewPartitionedRNG(seed)

		var (
			testID string
			orders []kitchen.Order
		)
		if offline {
			orders, err = client.GenerateProblem(rng.ForSubsystem(kitchen.SubsystemProblem), count)
			if err != nil {
				logrus.Fatalf("Could not generate problem: %v", err)
			}
			logrus.Infof("Generated offline problem with %d orders, seed=%d", len(orders), seed)
		} else {
			if auth == "" {
				logrus.Fatalf("Authentication token not provided. Exiting simulation.")
			}
			c := client.New(endpoint, auth)
			testID, orders, err = c.NewProblem(name, seed)
			if err != nil {
				logrus.Fatalf("Could not fetch problem: %v", err)
			}
			logrus.Infof("Fetched problem id=%s with %d orders, seed=%d", testID, len(orders), seed)
		}

		runner, err := kitchen.NewRunner(cfg, kitchen.SystemClock{}, rng)
		if err != nil {
			logrus.Fatalf("Could not build runner: %v", err)
		}
		actions, err := runner.Run(context.Background(), orders)
		if err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		printSummary(actions)

		if !offline {
			c := client.New(endpoint, auth)
			result, err := c.Solve(testID, client.SolveOptions{
				Rate: cfg.Rate(),
				Min:  cfg.MinPickup(),
				Max:  cfg.MaxPickup(),
			}, actions)
			if err != nil {
				logrus.Fatalf("Could not submit solution: %v", err)
			}
			logrus.Infof("Test result: %s", result)
		}
	},
}

// printSummary logs per-action-type counts for the completed run.
func printSummary(actions []kitchen.Action) {
	counts := make(map[kitchen.ActionType]int)
	for _, a := range actions {
		counts[a.Action]++
	}
	logrus.Infof("actions: %d total, %d place, %d move, %d pickup, %d pickup_failed, %d discard, %d expire",
		len(actions), counts[kitchen.ActionPlace], counts[kitchen.ActionMove],
		counts[kitchen.ActionPickup], counts[kitchen.ActionPickupFailed],
		counts[kitchen.ActionDiscard], counts[kitchen.ActionExpire])
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&endpoint, "endpoint", "https://api.cloudkitchens.com", "Challenge server endpoint")
	runCmd.Flags().StringVar(&auth, "auth", "", "Authentication token (required unless --offline)")
	runCmd.Flags().StringVar(&name, "name", "", "Problem name (optional)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Problem seed (random if zero)")
	runCmd.Flags().BoolVar(&offline, "offline", false, "Synthesize the problem locally and skip submission")
	runCmd.Flags().IntVar(&count, "orders", 40, "Number of synthetic orders in offline mode")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&rateMs, "rate", 500, "Milliseconds between order placements")
	runCmd.Flags().IntVar(&minPickupS, "min", 4, "Minimum pickup delay in seconds")
	runCmd.Flags().IntVar(&maxPickupS, "max", 8, "Maximum pickup delay in seconds")
	runCmd.Flags().StringVar(&storageConfig, "storage-config", "", "Yaml file with shelf capacities and overflow decay modifier")

	rootCmd.AddCommand(runCmd)
}
