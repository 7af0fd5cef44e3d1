package cmd

import (
	"log"

	"github.com/ermekov/tenderscope/internal/catalog"
	"github.com/ermekov/tenderscope/internal/company"
	"github.com/ermekov/tenderscope/internal/scoring"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "tenderscope"
)

type Config struct {
	TendersFile string           `mapstructure:"tenders-file"`
	CatalogFile string           `mapstructure:"catalog-file"`
	VaultFile   string           `mapstructure:"vault-file"`
	ExcludeFile string           `mapstructure:"exclude-file"`
	Workers     int              `mapstructure:"workers"`
	Scoring     *scoring.Config  `mapstructure:"scoring"`
	Company     *company.Profile `mapstructure:"company"`
	Screening   *struct {
		Exclude *struct {
			Issuers []string
		}
	}
	Evaluation *EvaluationConfig `mapstructure:"evaluation"`
	Materials  []MaterialConfig  `mapstructure:"materials"`
}

type EvaluationConfig struct {
	DurationDays int  `mapstructure:"duration-days"`
	Competitors  int  `mapstructure:"competitors"`
	HasPenalties bool `mapstructure:"has-penalties"`
}

// MaterialConfig is one material position priced against the AVK5
// catalog. An omitted unit price keeps the catalog's default; an
// explicit price, including zero, overrides it.
type MaterialConfig struct {
	Category      string   `mapstructure:"category"`
	Specification string   `mapstructure:"specification"`
	Quantity      float64  `mapstructure:"quantity"`
	UnitPrice     *float64 `mapstructure:"unit-price"`
}

func (m MaterialConfig) LineItem(cat *catalog.Catalog) (catalog.LineItem, error) {
	price := -1.0
	if m.UnitPrice != nil {
		price = *m.UnitPrice
	}
	return catalog.NewLineItem(cat, m.Category, m.Specification, m.Quantity, price)
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "tenderscope is a cli for scoring public procurement tenders against a company profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("tenders-file", "TENDERSCOPE_TENDERS_FILE"); err != nil {
		log.Fatalf("binding TENDERSCOPE_TENDERS_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is tenderscope.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for evaluate command now. If there is no config, we can skip initialization
	if evaluateCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
