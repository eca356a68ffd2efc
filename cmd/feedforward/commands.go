package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/profile"
	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/network"
	"github.com/feedforward-ml/feedforward/internal/serialization"
	"github.com/feedforward-ml/feedforward/internal/server"
)

// loadConfig reads a network configuration from a YAML file.
func loadConfig(path string) (network.Config, error) {
	var cfg network.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadExamples reads a JSON list of training examples.
func loadExamples(path string) ([]network.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var examples []network.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return examples, nil
}

// loadNetwork restores a network from a model file.
func loadNetwork(path string) (*network.Network, *serialization.Model, error) {
	model, err := serialization.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	net, err := network.FromSnapshot(model.Snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, model, nil
}

func startProfile(which string) (interface{ Stop() }, error) {
	switch which {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet), nil
	default:
		return nil, fmt.Errorf("unknown profile %q, want cpu or mem", which)
	}
}

func trainAction(c *cli.Context) error {
	if c.String("examples") == "" {
		return errors.New("missing required flag --examples")
	}
	examples, err := loadExamples(c.String("examples"))
	if err != nil {
		return err
	}

	if c.IsSet("seed") {
		matrix.Seed(c.Uint64("seed"))
	}

	var (
		net     *network.Network
		modelID string
	)
	if path := c.String("load"); path != "" {
		var model *serialization.Model
		if net, model, err = loadNetwork(path); err != nil {
			return err
		}
		modelID = model.Header.ModelID
	} else {
		if c.String("config") == "" {
			return errors.New("missing required flag --config (or --load)")
		}
		cfg, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}
		logEvery := c.Int("log-every")
		if logEvery > 0 {
			cfg.Progress = func(iteration int, cost float64) {
				if iteration%logEvery == 0 {
					logger.Debug("training", "iteration", iteration, "cost", cost)
				}
			}
		}
		if net, err = network.New(cfg).Initialize(); err != nil {
			return err
		}
	}

	prof, err := startProfile(c.String("profile"))
	if err != nil {
		return err
	}
	cost, err := net.Train(examples)
	if prof != nil {
		prof.Stop()
	}
	if err != nil {
		return err
	}
	logger.Info("trained",
		"examples", len(examples),
		"iterations", net.Iterations(),
		"cost", cost,
		"sizes", net.Sizes(),
	)

	header, err := serialization.SaveFile(c.String("out"), net.Snapshot(), serialization.Options{ModelID: modelID})
	if err != nil {
		return err
	}
	logger.Info("model saved", "path", c.String("out"), "id", header.ModelID)
	return nil
}

func runAction(c *cli.Context) error {
	raw := strings.Join(c.Args(), " ")
	if raw == "" {
		return errors.New("missing JSON input argument, e.g. '[1, 0, 0, 0]'")
	}
	in, err := network.DecodeSample(json.RawMessage(raw))
	if err != nil {
		return err
	}

	net, _, err := loadNetwork(c.String("model"))
	if err != nil {
		return err
	}
	out, err := net.Run(in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(out)
}

func inspectAction(c *cli.Context) error {
	net, model, err := loadNetwork(c.String("model"))
	if err != nil {
		return err
	}

	h := model.Header
	fmt.Printf("id:       %s\n", h.ModelID)
	fmt.Printf("created:  %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("sizes:    %v\n", net.Sizes())
	fmt.Printf("kind:     %v\n", h.Kind)
	if len(h.InputKeys) > 0 {
		fmt.Printf("inputs:   %s\n", strings.Join(h.InputKeys, ", "))
		fmt.Printf("outputs:  %s\n", strings.Join(h.OutputKeys, ", "))
	}
	fmt.Printf("trained:  %v\n", h.Trained)
	for k, v := range h.Metadata {
		fmt.Printf("meta:     %s=%s\n", k, v)
	}
	fmt.Println()
	return net.Dump(os.Stdout, network.Section(c.String("section")))
}

func serveAction(c *cli.Context) error {
	var (
		net     *network.Network
		modelID string
		err     error
	)
	switch {
	case c.String("model") != "":
		var model *serialization.Model
		if net, model, err = loadNetwork(c.String("model")); err != nil {
			return err
		}
		modelID = model.Header.ModelID
	case c.String("config") != "":
		cfg, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}
		if net, err = network.New(cfg).Initialize(); err != nil {
			return err
		}
	default:
		return errors.New("one of --model or --config is required")
	}

	savePath := c.String("save")
	if savePath == "" {
		savePath = c.String("model")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(net, server.Options{ModelID: modelID, ModelPath: savePath, Logger: logger})
	return srv.ListenAndServe(ctx, c.String("addr"))
}
