package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/channel-cross/internal/config"
	"github.com/ngmaloney/channel-cross/internal/crossing"
	"github.com/ngmaloney/channel-cross/internal/forecast"
	"github.com/ngmaloney/channel-cross/internal/log"
	"github.com/ngmaloney/channel-cross/internal/settings"
	"github.com/ngmaloney/channel-cross/internal/stormglass"
	"github.com/ngmaloney/channel-cross/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	defaults := cfg.Thresholds
	windMax := flag.Float64("wind-max", defaults.WindSpeedMax, "Maximum wind speed for a good crossing (knots)")
	cloudMax := flag.Float64("cloud-max", defaults.CloudCoverMax, "Maximum cloud cover for a good crossing (percent)")
	swellHeightMax := flag.Float64("swell-height-max", defaults.SwellHeightMax, "Maximum swell height for a good crossing (feet)")
	swellPeriodMin := flag.Float64("swell-period-min", defaults.SwellPeriodMin, "Minimum swell period for a good crossing (seconds)")
	flag.IntVar(&cfg.Days, "days", cfg.Days, "Number of forecast days to fetch")
	flag.StringVar(&cfg.Source, "source", cfg.Source, "Stormglass data source (e.g., noaa, sg)")
	flag.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "IANA time zone for grouping days (default: provider offsets)")
	flag.BoolVar(&cfg.Plain, "plain", false, "Print the forecast table once and exit")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the settings database")
	flag.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Path to the log file")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := log.Init(cfg.Debug, cfg.LogPath); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Saved thresholds seed the run; flags given on the command line win
	store := settings.NewRepository(cfg.DBPath)
	if saved, ok, err := store.LoadThresholds(); err != nil {
		log.Warnw("loading saved thresholds failed", "error", err)
	} else if ok {
		cfg.Thresholds = saved
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wind-max":
			cfg.Thresholds.WindSpeedMax = *windMax
		case "cloud-max":
			cfg.Thresholds.CloudCoverMax = *cloudMax
		case "swell-height-max":
			cfg.Thresholds.SwellHeightMax = *swellHeightMax
		case "swell-period-min":
			cfg.Thresholds.SwellPeriodMin = *swellPeriodMin
		}
	})

	loc, err := cfg.Location()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	client := stormglass.NewPointClient(cfg.APIKey,
		stormglass.WithBaseURL(cfg.BaseURL),
		stormglass.WithSource(cfg.Source),
		stormglass.WithMinInterval(cfg.MinRefresh),
	)

	log.Infow("starting",
		"lat", cfg.Latitude,
		"lon", cfg.Longitude,
		"days", cfg.Days,
		"source", cfg.Source,
		"plain", cfg.Plain,
		"thresholds", cfg.Thresholds)

	if cfg.Plain {
		if err := printForecast(cfg, client, loc); err != nil {
			log.Errorw("plain run failed", "error", err)
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.NewModel(ui.Options{
		Client:     client,
		Store:      store,
		Thresholds: cfg.Thresholds,
		Latitude:   cfg.Latitude,
		Longitude:  cfg.Longitude,
		Days:       cfg.Days,
		Source:     cfg.Source,
		Location:   loc,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// printForecast fetches, classifies and prints the table once
func printForecast(cfg *config.Config, client stormglass.ForecastClient, loc *time.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start, end := cfg.Window(time.Now())
	hours, err := client.GetHourlyForecast(ctx, cfg.Latitude, cfg.Longitude, start, end)
	if err != nil {
		return err
	}

	days, err := forecast.AggregateHours(hours, cfg.Source, loc)
	if err != nil {
		return fmt.Errorf("aggregating forecast: %w", err)
	}

	rows := crossing.Rows(days, cfg.Thresholds)
	fmt.Println(ui.RenderTable(rows))
	fmt.Println(ui.RenderSummary(rows))
	return nil
}
