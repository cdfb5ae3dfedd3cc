package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pixelgrid/internal/config"
	"pixelgrid/internal/discovery"
	"pixelgrid/internal/export"
	"pixelgrid/internal/grid"
	"pixelgrid/internal/logging"
	"pixelgrid/internal/mirror"
	"pixelgrid/internal/palette"
	"pixelgrid/internal/tui"
)

// Editor command flags
var (
	configPath string
	gridSize   int
	exportDir  string
	share      bool
	sharePort  int
	announce   bool
)

// Export command flags
var (
	exportIn  string
	exportPNG string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: platform config dir)")

	rootCmd.Flags().IntVar(&gridSize, "size", 0, "Grid dimension N for an NxN grid (overrides config)")
	rootCmd.Flags().StringVar(&exportDir, "export-dir", "", "Directory for CSV artifacts (overrides config)")
	rootCmd.Flags().BoolVar(&share, "share", false, "Mirror the live grid to WebSocket viewers")
	rootCmd.Flags().IntVar(&sharePort, "share-port", 0, "Mirror server port (overrides config)")
	rootCmd.Flags().BoolVar(&announce, "announce", false, "Advertise the mirror over mDNS (implies --share)")

	rootCmd.AddCommand(exportCmd)
}

// loadConfig loads configuration from --config or the default location.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// runEdit launches the interactive editor.
func runEdit(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flag overrides
	if gridSize > 0 {
		cfg.GridSize = gridSize
	}
	if exportDir != "" {
		cfg.ExportDir = exportDir
	}
	if sharePort > 0 {
		cfg.Mirror.Port = sharePort
	}
	if announce {
		share = true
	}

	p, err := cfg.BuildPalette()
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.GridSize)
	if err != nil {
		return err
	}
	store := palette.NewStore(p)

	// Optional live share
	var hub *mirror.Hub
	var server *mirror.Server
	var announcer *discovery.Announcer
	if share {
		hub = mirror.NewHub(g.Size())
		server = mirror.NewServer(hub, cfg.Mirror.Port)
		server.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()

		if announce || cfg.Mirror.Announce {
			announcer, err = discovery.Announce(cfg.Mirror.Port, g.Size())
			if err != nil {
				return fmt.Errorf("failed to announce mirror: %w", err)
			}
			defer announcer.Shutdown()
		}
	}

	model, err := tui.NewModel(g, store, hub, cfg.ExportDir, cfg.CellFill)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

// exportCmd renders a previously exported CSV to PNG
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render an exported CSV grid to PNG",
	Long: `Render a previously exported grid CSV to a PNG image.

The CSV is parsed against the configured palette: every token must be a
palette color name or the reserved token "none".`,
	Example: `  # Render an export to PNG
  pixelgrid export --in grid_colors_16x16.csv --png grid.png`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportIn, "in", "", "Input CSV file (required)")
	exportCmd.Flags().StringVar(&exportPNG, "png", "", "Output PNG file (required)")
	_ = exportCmd.MarkFlagRequired("in")
	_ = exportCmd.MarkFlagRequired("png")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	p, err := cfg.BuildPalette()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(exportIn)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", exportIn, err)
	}
	g, err := grid.Parse(string(data), p)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", exportIn, err)
	}

	if err := export.WritePNG(g, p, exportPNG); err != nil {
		return err
	}

	fmt.Printf("Rendered %s (%dx%d) to %s\n", exportIn, g.Size(), g.Size(), exportPNG)
	return nil
}
