// Package main provides the feedforward CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/feedforward-ml/feedforward/internal/matrix"
)

const version = "v0.1.0"

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	app := cli.NewApp()
	app.Name = "feedforward"
	app.Usage = "Train and run small sigmoid feed-forward networks"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug messages, including training progress",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 1,
			Usage: "Split large matrix products across `n` goroutines",
		},
	}
	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.GlobalBool("verbose") {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		matrix.SetWorkers(c.GlobalInt("workers"))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "train",
			Usage: "Train a network and save it as a model file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config",
					Usage: "YAML `file` with the network configuration",
				},
				cli.StringFlag{
					Name:  "examples",
					Usage: "JSON `file` with a list of {\"input\": ..., \"output\": ...} examples",
				},
				cli.StringFlag{
					Name:  "load",
					Usage: "Optional model `file` to continue training from (--config is ignored)",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "model.ffnn",
					Usage: "`file` path to save the model",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Usage: "Seed for weight initialization (random when unset)",
				},
				cli.IntFlag{
					Name:  "log-every",
					Value: 1000,
					Usage: "Log the cost every `n` iterations (with --verbose)",
				},
				cli.StringFlag{
					Name:  "profile",
					Usage: "Write a `cpu` or `mem` profile of the training run",
				},
			},
			Action: trainAction,
		},
		{
			Name:      "run",
			Usage:     "Run an input through a saved model",
			ArgsUsage: "<json input>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "model",
					Value: "model.ffnn",
					Usage: "model `file` to load",
				},
			},
			Action: runAction,
		},
		{
			Name:  "inspect",
			Usage: "Print the header and matrices of a saved model",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "model",
					Value: "model.ffnn",
					Usage: "model `file` to load",
				},
				cli.StringFlag{
					Name:  "section",
					Value: "weights",
					Usage: "one of input, output, activations, weights, biases, all",
				},
			},
			Action: inspectAction,
		},
		{
			Name:  "serve",
			Usage: "Serve a model over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "model",
					Usage: "model `file` to serve",
				},
				cli.StringFlag{
					Name:  "config",
					Usage: "YAML `file` for a fresh network when --model is not given",
				},
				cli.StringFlag{
					Name:  "save",
					Usage: "`file` written by POST /model/save (defaults to --model)",
				},
				cli.StringFlag{
					Name:  "addr",
					Value: ":8080",
					Usage: "listen `address`",
				},
			},
			Action: serveAction,
		},
		{
			Name:  "version",
			Usage: "Show version",
			Action: func(c *cli.Context) error {
				fmt.Printf("feedforward %s\n", version)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
