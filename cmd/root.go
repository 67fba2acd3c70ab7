package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pavannsshetty7022/abbrevify/internal/abbrev"
	"github.com/pavannsshetty7022/abbrevify/internal/auth"
	"github.com/pavannsshetty7022/abbrevify/internal/config"
	"github.com/pavannsshetty7022/abbrevify/internal/history"
	"github.com/pavannsshetty7022/abbrevify/internal/log"
	"github.com/pavannsshetty7022/abbrevify/internal/service"
	"github.com/pavannsshetty7022/abbrevify/internal/stats"
	"github.com/pavannsshetty7022/abbrevify/internal/store"
	"github.com/pavannsshetty7022/abbrevify/internal/ui/converter"
)

var (
	cfgFile    string
	serviceURL string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "abbrevify",
	Short: "Convert SMS abbreviations, check grammar, and check plagiarism",
	Long: `Abbrevify is a terminal front end for the text processing service.
It converts between SMS shorthand and full English, checks grammar, and
checks text for plagiarism. Conversion history, custom abbreviations, and
usage statistics are kept locally.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default .abbrevify/config.yaml, then ~/.config/abbrevify/config.yaml)")
	rootCmd.Flags().StringVar(&serviceURL, "service-url", "", "text processing endpoint override")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() (config.Config, error) {
	return config.Load(config.Resolve(cfgFile))
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if err := log.Setup(cfg.LogPath(), level); err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer log.Close()

	endpoint := cfg.ServiceURL
	if serviceURL != "" {
		endpoint = serviceURL
	}

	model := converter.New(converter.Deps{
		Processor:  service.NewClient(endpoint),
		History:    history.Load(cfg.HistoryPath()),
		Abbrevs:    abbrev.Load(cfg.AbbreviationsPath()),
		Stats:      stats.Load(cfg.StatsPath()),
		ConfigPath: cfg.Path(),
		Theme:      cfg.Theme,
		User:       store.Load(cfg.UserPath(), (*auth.User)(nil)),
	})

	log.Info(log.CatUI, "starting", "config", cfg.Path(), "endpoint", endpoint)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
