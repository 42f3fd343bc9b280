// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/api"
	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/config"
	"github.com/jiftechnify/iidx-calendar-heatmap/heatmap"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
	"github.com/jiftechnify/iidx-calendar-heatmap/tui"
)

var (
	configPath string
	cfg        *config.Config
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "iidx-heatmap",
		Short: "Render IIDX play activity as a one-year calendar heatmap",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newRenderCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newTUICommand())
	root.AddCommand(newDemoCommand())
	return root
}

func newRenderCommand() *cobra.Command {
	var (
		metricName string
		dateStr    string
		outPath    string
		title      string
	)
	cmd := &cobra.Command{
		Use:   "render [records.json]",
		Short: "Render a heatmap image from a play records file",
		Long: "Reads a JSON array of play records and writes a heatmap image.\n" +
			"With no file argument (or \"-\") records are read from stdin.\n" +
			"The output format follows the extension of --out: .png renders PNG,\n" +
			"anything else SVG.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			records, err := loadRecords(args)
			if err != nil {
				return err
			}
			metric, err := model.ParseMetric(metricName)
			if err != nil {
				return err
			}
			asOf, err := parseAsOf(dateStr)
			if err != nil {
				return err
			}

			opts := cfg.HeatmapOptions()
			if title != "" {
				opts.Title = title
			}

			agg := activity.Aggregate(records)
			if n := agg.Skipped(); n > 0 {
				log.Printf("Skipped %d invalid records", n)
			}
			cells := heatmap.BuildCells(agg, calendar.NewWindow(asOf), metric, opts)

			var data []byte
			if strings.EqualFold(filepath.Ext(outPath), ".png") {
				data, err = heatmap.RenderPNG(cells, opts)
				if err != nil {
					return err
				}
			} else {
				data = []byte(heatmap.GenerateSVG(cells, opts))
			}

			if outPath == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(outPath, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&metricName, "metric", "m", "", "metric to render (heat, keyboard, scratch)")
	cmd.Flags().StringVar(&dateStr, "date", "", "as-of date in yyyyMMdd form (default today)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&title, "title", "", "title drawn above the grid (SVG only)")
	return cmd
}

func newServeCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the heatmap rendering API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			if port != "" {
				cfg.Server.Port = port
			}
			server := api.NewServer(cfg)
			return server.Run(":" + cfg.Server.Port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides config)")
	return cmd
}

func newTUICommand() *cobra.Command {
	var (
		metricName string
		dateStr    string
	)
	cmd := &cobra.Command{
		Use:   "tui [records.json]",
		Short: "Browse the heatmap interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			records, err := loadRecords(args)
			if err != nil {
				return err
			}
			metric, err := model.ParseMetric(metricName)
			if err != nil {
				return err
			}
			asOf, err := parseAsOf(dateStr)
			if err != nil {
				return err
			}
			return tui.Run(records, asOf, metric)
		},
	}
	cmd.Flags().StringVarP(&metricName, "metric", "m", "", "metric shown first (heat, keyboard, scratch)")
	cmd.Flags().StringVar(&dateStr, "date", "", "as-of date in yyyyMMdd form (default today)")
	return cmd
}

// loadRecords はファイル引数（省略時は標準入力）からプレー記録を読み込みます。
func loadRecords(args []string) ([]model.PlayRecord, error) {
	if len(args) == 0 || args[0] == "-" {
		return model.DecodeRecords(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()
	return model.DecodeRecords(f)
}

func parseAsOf(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	return model.ParsePlayDate(dateStr)
}
