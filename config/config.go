// Package config はアプリケーション設定を管理します。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jiftechnify/iidx-calendar-heatmap/heatmap"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Grid   GridConfig   `mapstructure:"grid"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	// HTTPサーバーのポート
	Port string `mapstructure:"port"`

	// APIキー（空の場合は認証なし）
	APIKey string `mapstructure:"api_key"`
}

// GridConfig はグリッド形状の設定です。
type GridConfig struct {
	CellSize   int `mapstructure:"cell_size"`
	CellMargin int `mapstructure:"cell_margin"`
	CellRadius int `mapstructure:"cell_radius"`
}

// RenderConfig は描画スタイルの設定です。
type RenderConfig struct {
	FontSize   int    `mapstructure:"font_size"`
	FontFamily string `mapstructure:"font_family"`
	ZeroFill   string `mapstructure:"zero_fill"`
	BlankFill  string `mapstructure:"blank_fill"`
	Title      string `mapstructure:"title"`
}

// Load は設定ファイルと環境変数（IIDX_HEATMAP_*）から設定を読み込みます。
// pathが空の場合は既定値と環境変数のみを使用します。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("IIDX_HEATMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.api_key", "")
	v.SetDefault("grid.cell_size", 12)
	v.SetDefault("grid.cell_margin", 2)
	v.SetDefault("grid.cell_radius", 2)
	v.SetDefault("render.font_size", 10)
	v.SetDefault("render.font_family", "sans-serif")
	v.SetDefault("render.zero_fill", "#ebedf0")
	v.SetDefault("render.blank_fill", "#f6f8fa")
	v.SetDefault("render.title", "")
}

// Validate は設定値の検証を行います。
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be positive")
	}
	if c.Grid.CellMargin < 0 {
		return fmt.Errorf("grid.cell_margin must be non-negative")
	}
	if c.Grid.CellRadius < 0 {
		return fmt.Errorf("grid.cell_radius must be non-negative")
	}
	if c.Render.FontSize <= 0 {
		return fmt.Errorf("render.font_size must be positive")
	}
	return nil
}

// HeatmapOptions は設定から描画オプションを組み立てます。
func (c *Config) HeatmapOptions() *heatmap.Options {
	return &heatmap.Options{
		CellSize:   c.Grid.CellSize,
		CellMargin: c.Grid.CellMargin,
		CellRadius: c.Grid.CellRadius,
		FontSize:   c.Render.FontSize,
		FontFamily: c.Render.FontFamily,
		ZeroFill:   c.Render.ZeroFill,
		BlankFill:  c.Render.BlankFill,
		Title:      c.Render.Title,
	}
}
