package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go-rainwater/config"
	"go-rainwater/pkg/pqueue"
	"go-rainwater/services/benchmark"
	"go-rainwater/util/logger"
)

func main() {
	configs := config.New()
	if err := parseFlags(configs, os.Args[1:]); err != nil {
		fatal(err)
	}

	if err := logger.SetLevel(configs.LogLevel); err != nil {
		fatal(err)
	}

	report, err := benchmark.New(configs.Benchmark, logger.L).Run()
	if report != nil {
		if werr := report.Write(os.Stdout); werr != nil {
			logger.L.WithError(werr).Error("failed to write report")
		}
	}
	if err != nil {
		logger.L.WithError(err).Fatal("benchmark failed")
	}
}

func parseFlags(configs *config.AppConfig, args []string) error {
	c := configs.Benchmark
	pour := config.DefaultPour()
	backends := ""

	fs := flag.NewFlagSet("rainwater", flag.ContinueOnError)
	fs.IntVar(&c.Rows, "rows", c.Rows, "height map rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "height map columns")
	fs.IntVar(&c.Min, "min", c.Min, "lowest generated height")
	fs.IntVar(&c.Max, "max", c.Max, "highest generated height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the height map")
	fs.IntVar(&pour.Row, "pour-row", pour.Row, "row of the pour event")
	fs.IntVar(&pour.Col, "pour-col", pour.Col, "column of the pour event")
	fs.IntVar(&pour.Amount, "pour", 0, "amount poured before solving, 0 disables the pour")
	fs.StringVar(&backends, "backends", "", "comma separated backends to run (reference,array,tree)")
	fs.StringVar(&configs.LogLevel, "log-level", configs.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if pour.Amount != 0 {
		c.Pour = pour
	}

	if backends != "" {
		c.Backends = c.Backends[:0]
		for _, name := range strings.Split(backends, ",") {
			k, err := pqueue.ParseKind(name)
			if err != nil {
				return err
			}
			c.Backends = append(c.Backends, k)
		}
	}

	return c.Validate()
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}
