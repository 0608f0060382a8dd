package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/banachtech/valuation/api"
	"github.com/banachtech/valuation/calibrate"
	"github.com/banachtech/valuation/config"
	"github.com/banachtech/valuation/engine"
	"github.com/banachtech/valuation/logging"
	"github.com/banachtech/valuation/model"
	"github.com/banachtech/valuation/product"
	"github.com/banachtech/valuation/random"
	"github.com/schollz/progressbar/v3"
)

// sample market used by the demo run
var (
	swapMaturities = []float64{1.0, 2.0, 3.0, 5.0, 7.0, 10.0}
	swapRates      = []float64{0.030, 0.032, 0.034, 0.036, 0.037, 0.038}
	volMaturities  = []float64{0.25, 0.5, 1.0, 2.0}
	impliedVols    = []float64{0.22, 0.21, 0.20, 0.195}
)

const spot = 100.0

func main() {
	configPath := flag.String("config", "", "path to a config file")
	serve := flag.Bool("serve", false, "start the HTTP pricing service")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	logger := logging.New(logging.Config{
		Service:    "valuation",
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	engine.SetLogger(logger)
	calibrate.SetLogger(logger)

	if *serve {
		logger.Info("starting server", "address", cfg.Server.Address)
		if err := api.NewServer(cfg, logger).Start(cfg.Server.Address); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(-1)
		}
		return
	}

	if err := demo(cfg); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func demo(cfg *config.Config) error {
	curve, err := calibrate.YieldCurve(swapMaturities, swapRates, model.Flat, model.InstForwardRate)
	if err != nil {
		return err
	}
	fmt.Println("bootstrapped forwards:", curve.Components())

	bs, err := calibrate.BlackScholes(spot, volMaturities, impliedVols, curve, model.Flat, model.InstVol)
	if err != nil {
		return err
	}
	fmt.Println("bootstrapped vols:", bs.Components())

	swap, err := product.NewVanillaSwap(0.0, 5.0, 0.035, 0.5, 0.25, 1e6, product.Receive)
	if err != nil {
		return err
	}
	pv, err := engine.Price(curve, swap, engine.MethodAnalytic)
	if err != nil {
		return err
	}
	fmt.Printf("%-24s %14.6f\n", "5y receive 3.5% swap", pv)

	asian, err := product.NewAsian(0.0, 1.0, 12, 1.0, product.Call, product.Buy, spot, product.Geometric)
	if err != nil {
		return err
	}
	arithmetic, err := product.NewAsian(0.0, 1.0, 12, 1.0, product.Call, product.Buy, spot, product.Arithmetic)
	if err != nil {
		return err
	}
	options := []struct {
		name    string
		product product.Product
	}{
		{"1y ATM call", product.NewCall(1.0, 1.0, product.Buy, spot)},
		{"1y ATM put", product.NewPut(1.0, 1.0, product.Buy, spot)},
		{"1y ATM straddle", product.NewStraddle(1.0, 1.0, product.Buy, spot)},
		{"1y geometric Asian", asian},
		{"1y arithmetic Asian", arithmetic},
	}

	for _, o := range options {
		analytic := "n/a"
		if pv, err := engine.Price(bs, o.product, engine.MethodAnalytic); err == nil {
			analytic = fmt.Sprintf("%.6f", pv)
		}

		var stream random.Stream = random.NewParkMiller(1, cfg.MC.Seed)
		if cfg.MC.Antithetic {
			stream = random.NewAntithetic(stream)
		}
		bar := progressBar(cfg.MC.Paths, o.name)
		e, err := engine.NewMonteCarlo(bs, o.product, stream, cfg.MC.Paths, true,
			engine.WithProgress(func(done int) { _ = bar.Set(done) }))
		if err != nil {
			return err
		}
		mcPV := engine.PV(e)
		_ = bar.Finish()

		fmt.Printf("%-24s %14s %14.6f +/- %.6f\n", o.name, analytic, mcPV, e.StdErr())
	}
	return nil
}

// progress bar initialization
func progressBar(length int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		length,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
