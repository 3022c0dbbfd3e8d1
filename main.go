/*
Command geometria loads a scene of colliders, casts its rays and reports the
hits. With -watch it keeps running and casts again whenever the scene or one
of its meshes changes on disk.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/geometria/engine"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/testbed"
)

func main() {
	if err := run(); err != nil {
		core.LogError("%s", err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML configuration file")
	scenePath := flag.String("scene", "", "scene file, relative to the assets directory")
	assetsDir := flag.String("assets", "", "assets directory")
	watch := flag.Bool("watch", false, "reload and cast again when the scene changes")
	logLevel := flag.String("log-level", "", "debug, info, warn, error or fatal")
	noiseOutput := flag.String("noise-output", "", "write a simplex noise height map (.bmp or .png)")
	noiseSize := flag.Int("noise-size", 0, "noise map width and height in pixels")
	noiseScale := flag.Float64("noise-scale", 0, "noise units per pixel")
	noiseSeed := flag.Uint64("noise-seed", 0, "noise permutation seed")
	flag.Parse()

	config := engine.DefaultApplicationConfig()
	if *configPath != "" {
		c, err := engine.LoadApplicationConfig(*configPath)
		if err != nil {
			return err
		}
		config = c
	}

	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			config.ScenePath = *scenePath
		case "assets":
			config.AssetsDir = *assetsDir
		case "watch":
			config.Watch = *watch
		case "log-level":
			config.LogLevel = core.LogLevel(*logLevel)
		case "noise-output":
			config.NoiseOutput = *noiseOutput
		case "noise-size":
			config.NoiseSize = *noiseSize
		case "noise-scale":
			config.NoiseScale = float32(*noiseScale)
		case "noise-seed":
			config.NoiseSeed = *noiseSeed
		}
	})

	tb := testbed.NewTestGame(config)

	e, err := engine.New(tb.Game)
	if err != nil {
		return err
	}

	if config.NoiseOutput != "" {
		if err := testbed.WriteNoiseMap(config.NoiseOutput, config.NoiseSize, config.NoiseScale, config.NoiseSeed); err != nil {
			return errors.Join(fmt.Errorf("noise map: %w", err), e.Shutdown())
		}
		if config.ScenePath == "" {
			return e.Shutdown()
		}
	}

	if err := e.Initialize(); err != nil {
		return errors.Join(err, e.Shutdown())
	}

	// signal channel to capture system calls
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// start shutdown goroutine
	go func() {
		select {
		case <-sigCh:
			e.Events().Fire(core.EVENT_CODE_APPLICATION_QUIT, nil, core.EventContext{})
		case <-ctx.Done():
		}
	}()

	// run engine
	runErr := e.Run(ctx)
	return errors.Join(runErr, e.Shutdown())
}
