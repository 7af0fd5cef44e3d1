package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ermekov/tenderscope/internal/catalog"
	"github.com/ermekov/tenderscope/internal/company"
	"github.com/ermekov/tenderscope/internal/evaluation"
	"github.com/ermekov/tenderscope/internal/export"
	"github.com/ermekov/tenderscope/internal/logger"
	"github.com/ermekov/tenderscope/internal/screening"
	"github.com/ermekov/tenderscope/internal/tender"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes                    = "Show full reports"
	PromptNo                     = "No"
	PromptReportByRecommendation = "Report by recommendation"
	PromptReportByIssuer         = "Report by issuer"
	PromptResultsToCSV           = "Export results to CSV"
	PromptResultsToFile          = "Dump results to file"
	PromptTendersToFile          = "Dump tenders to file"
	PromptAppendToExcludeFile    = "Append avoided tenders to exclude file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo, PromptReportByRecommendation, PromptReportByIssuer, PromptResultsToCSV, PromptResultsToFile, PromptTendersToFile, PromptAppendToExcludeFile},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the tenderscope main command",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation, print full reports and exit")
	evaluateCmd.Flags().StringP("exclude-file", "e", "", "special file with tenders to exclude. Default is unset.")
	evaluateCmd.Flags().StringP("output", "o", "", "path for the CSV export. Default is tender_scores.csv.")
	evaluateCmd.Flags().IntP("workers", "w", 0, "number of concurrent evaluations. Default is the evaluator's own.")

	viper.BindPFlag("exclude-file", evaluateCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("output", evaluateCmd.Flags().Lookup("output"))
}

// evaluate is the main command for the cli.
func evaluate(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the tenderscope", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.TendersFile == "" {
		logger.Fatal(
			"tenders file is required",
			zap.String("hint", "set TENDERSCOPE_TENDERS_FILE environment variable or the 'tenders-file' key in the configuration file"),
		)
	}

	tenders, err := tender.LoadFromFile(config.TendersFile)
	if err != nil {
		logger.Fatal("loading tenders", zap.Error(err))
	}

	logger.Info("loading tenders", zap.Int("count", tenders.Len()))

	if tenders.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no tenders found"))
		return
	}

	profile, vault := loadCompany(config, logger)
	items := loadMaterials(config, logger)

	screened, err := screening.Run(prepareScreeningConfig(config), screening.Deps{Logger: logger}, prepareScreeningSteps(), tenders)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}
	tenders = screened

	if tenders.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no tenders left after screening"))
		return
	}

	evaluator := prepareEvaluator(config, profile, vault, logger)

	workers := config.Workers
	if flagWorkers, err := cmd.Flags().GetInt("workers"); err == nil && flagWorkers > 0 {
		workers = flagWorkers
	}

	results := evaluator.EvaluateBatch(tenders, items, workers)

	for _, result := range results {
		logger.Info("tender evaluated", summaryFields(result)...)
	}

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of tenders", zap.Int("count", tenders.Len()))

		if err := handleAction(action, logger, tenders, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func summaryFields(result *evaluation.Result) []zap.Field {
	return logger.ResultFields(
		result.TenderID,
		result.Scores.Total,
		result.Analysis.ROIScore,
		string(result.Analysis.Recommendation),
	)
}

func handleAction(action string, log *zap.Logger, tenders *tender.Tenders, results []*evaluation.Result) error {
	switch action {
	case PromptYes:
		for _, result := range results {
			export.RenderReport(os.Stdout, result)
			fmt.Println()
		}
		return nil
	case PromptNo:
		log.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByRecommendation:
		pretty, _ := json.MarshalIndent(tenders.ReportByRecommendation(evaluation.RecommendationIndex(results)), "", "  ")
		log.Info(string(pretty), zap.Int("tenders count", tenders.Len()))
		return nil
	case PromptReportByIssuer:
		pretty, _ := json.MarshalIndent(tenders.ReportByIssuer(), "", "  ")
		log.Info(string(pretty), zap.Int("tenders count", tenders.Len()))
		return nil
	case PromptResultsToCSV:
		path := strings.TrimSpace(viper.GetString("output"))
		if path == "" {
			path = "tender_scores.csv"
		}
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv file: %w", err)
		}
		defer file.Close()
		if err := export.WriteCSV(file, results); err != nil {
			return fmt.Errorf("export results to csv: %w", err)
		}
		log.Info("exporting results to csv", zap.String("filename", path))
		return nil
	case PromptResultsToFile:
		filename, err := export.DumpToTmpFile(results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptTendersToFile:
		filename, err := tenders.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump tenders to file: %w", err)
		}
		log.Info("dumping tenders to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendAvoidedToExcludeFile(log, tenders, results)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendAvoidedToExcludeFile(log *zap.Logger, tenders *tender.Tenders, results []*evaluation.Result) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		return errors.New("exclude file is not configured")
	}

	avoided := &tender.Tenders{}
	index := evaluation.RecommendationIndex(results)
	for _, record := range tenders.Items {
		if index[record.ID] == "avoid" {
			avoided.Items = append(avoided.Items, record)
		}
	}

	if avoided.Len() == 0 {
		log.Info("nothing to exclude", zap.String("reason", "no avoided tenders"))
		return nil
	}

	excluded, err := tender.GetExcludedTendersFromFile(excludeFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		excluded = &tender.ExcludedTenders{}
	}

	excluded.Append(avoided.ToExcluded())

	if err = excluded.ToFile(excludeFile); err != nil {
		return err
	}

	log.Info("appended to exclude file", zap.String("filename", excludeFile))

	tenders.Exclude(tender.RecordIDField, excluded.IDs())
	return nil
}

func loadCompany(config *Config, log *zap.Logger) (*company.Profile, company.Snapshot) {
	profile := config.Company
	if profile == nil {
		log.Warn("company profile is not configured; assuming zero resources")
		profile = &company.Profile{}
	}

	vault := company.NewVault()
	if config.VaultFile != "" {
		loaded, err := company.LoadVaultFromFile(config.VaultFile)
		if err != nil {
			log.Fatal("loading document vault", zap.Error(err))
		}
		vault = loaded
	}

	log.Info("loading company profile",
		zap.Int("workers", profile.Workers),
		zap.Int("engineers", profile.Engineers),
		zap.Int("vehicles", profile.Vehicles),
		zap.Int("documents", vault.Len()),
	)

	return profile, vault.Snapshot()
}

func loadMaterials(config *Config, log *zap.Logger) []catalog.LineItem {
	if len(config.Materials) == 0 {
		return nil
	}

	if config.CatalogFile == "" {
		log.Fatal("catalog file is required when materials are configured")
	}

	cat, err := catalog.LoadFromFile(config.CatalogFile)
	if err != nil {
		log.Fatal("loading price catalog", zap.Error(err))
	}

	items := make([]catalog.LineItem, 0, len(config.Materials))
	for _, material := range config.Materials {
		item, err := material.LineItem(cat)
		if err != nil {
			log.Fatal("building material line item",
				zap.String("category", material.Category),
				zap.String("specification", material.Specification),
				zap.Error(err),
			)
		}
		items = append(items, item)
	}

	return items
}

func prepareScreeningConfig(config *Config) *screening.Config {
	cfg := &screening.Config{
		ExcludeFile: strings.TrimSpace(viper.GetString("exclude-file")),
	}
	if config.Screening != nil && config.Screening.Exclude != nil {
		cfg.ExcludedIssuers = config.Screening.Exclude.Issuers
	}
	return cfg
}

func prepareScreeningSteps() []screening.Filter {
	return []screening.Filter{
		screening.NewExpiredDeadline(),
		screening.NewExcludedIssuers(),
		screening.NewExcludeFile(),
	}
}

func prepareEvaluator(config *Config, profile *company.Profile, vault company.Snapshot, log *zap.Logger) *evaluation.Evaluator {
	opts := evaluation.Options{Logger: log}
	if config.Scoring != nil {
		opts.Scoring = *config.Scoring
	}
	if config.Evaluation != nil {
		opts.DurationDays = config.Evaluation.DurationDays
		opts.Competitors = config.Evaluation.Competitors
		opts.HasPenalties = config.Evaluation.HasPenalties
	}

	return evaluation.New(profile, vault, opts)
}
