package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/researchaccelerator-hub/channel-categorizer/categorize"
	"github.com/researchaccelerator-hub/channel-categorizer/client"
	"github.com/researchaccelerator-hub/channel-categorizer/common"
	"github.com/researchaccelerator-hub/channel-categorizer/config"
	"github.com/researchaccelerator-hub/channel-categorizer/model"
	"github.com/researchaccelerator-hub/channel-categorizer/orchestrator"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "channel-categorizer",
		Short: "Resolve YouTube channel URLs and classify them into brand categories",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := zerolog.ParseLevel(v.GetString("log-level"))
			if err != nil {
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("youtube-api-key", "", "YouTube Data API key")
	root.PersistentFlags().String("openai-api-key", "", "OpenAI API key")
	root.PersistentFlags().String("brand", "", "brand taxonomy to classify against")

	v.SetEnvPrefix("CATEGORIZER")
	v.AutomaticEnv()
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(v))
	root.AddCommand(newBrandsCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	var (
		inputFile  string
		outputFile string
		singleURL  string
		singleName string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process a batch of channel URLs from a CSV file or a single URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			records, err := collectRecords(inputFile, singleURL, singleName)
			if err != nil {
				return err
			}

			return runBatch(cmd.Context(), cfg, records, outputFile)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV file of channel URLs")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write results as CSV to this file (default stdout)")
	cmd.Flags().StringVar(&singleURL, "url", "", "process a single channel or video URL")
	cmd.Flags().StringVar(&singleName, "name", "", "display name for the single URL")
	cmd.MarkFlagsMutuallyExclusive("input", "url")

	return cmd
}

func newBrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the configured brand taxonomies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, brand := range model.Brands() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", brand.Name)
				for _, cat := range brand.Categories {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", cat.Name)
				}
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-key <api-key>",
		Short: "Store a custom YouTube API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			return prefs.SetCustomYouTubeAPIKey(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear-key",
		Short: "Remove the custom YouTube API key, reverting to the default",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			return prefs.SetCustomYouTubeAPIKey("")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-brand <name>",
		Short: "Store the brand taxonomy preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			return prefs.SetSelectedBrand(args[0])
		},
	})

	return cmd
}

func openPreferences() (*config.Preferences, error) {
	path, err := config.DefaultPreferencesPath()
	if err != nil {
		return nil, err
	}
	return config.OpenPreferences(path)
}

// loadConfig snapshots the effective configuration before the batch starts.
func loadConfig(v *viper.Viper) (config.Config, error) {
	prefs, err := openPreferences()
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Load(v, prefs)
	if cfg.YouTubeAPIKey == "" {
		return config.Config{}, fmt.Errorf("no YouTube API key configured, set --youtube-api-key, CATEGORIZER_YOUTUBE_API_KEY, or run 'config set-key'")
	}
	if cfg.OpenAIAPIKey == "" {
		return config.Config{}, fmt.Errorf("no OpenAI API key configured, set --openai-api-key or CATEGORIZER_OPENAI_API_KEY")
	}
	return cfg, nil
}

func collectRecords(inputFile, singleURL, singleName string) ([]model.ChannelRecord, error) {
	if singleURL != "" {
		name := singleName
		if name == "" {
			name = model.PlaceholderName
		}
		return []model.ChannelRecord{{
			URL:    singleURL,
			Name:   name,
			Status: model.StatusPending,
		}}, nil
	}

	if inputFile == "" {
		return nil, fmt.Errorf("either --input or --url is required")
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return common.LoadRecords(f)
}

func runBatch(ctx context.Context, cfg config.Config, records []model.ChannelRecord, outputFile string) error {
	brand := model.BrandByName(cfg.Brand)

	yt, err := client.NewYouTubeDataClient(cfg.YouTubeAPIKey)
	if err != nil {
		return err
	}
	if err := yt.Connect(ctx); err != nil {
		return err
	}

	llm, err := client.NewOpenAIClient(cfg.OpenAIAPIKey)
	if err != nil {
		return err
	}

	engine := categorize.NewEngine(yt, llm)

	observer := func(snapshot []model.ChannelRecord) {
		done := 0
		for _, rec := range snapshot {
			if rec.Terminal() {
				done++
			}
		}
		log.Info().Int("done", done).Int("total", len(snapshot)).Msg("Progress")
	}

	pipeline := orchestrator.NewPipeline(yt, engine, observer)
	if err := pipeline.Process(ctx, records, brand); err != nil {
		return err
	}

	if pipeline.QuotaExceeded() {
		log.Warn().Msg("YouTube API quota exceeded during this batch, results are incomplete; try again tomorrow or use a custom API key")
	}

	results := pipeline.Records()
	if outputFile == "" {
		return common.WriteRecords(os.Stdout, results)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := common.WriteRecords(f, results); err != nil {
		return err
	}
	log.Info().Str("file", outputFile).Int("records", len(results)).Msg("Results written")
	return nil
}
