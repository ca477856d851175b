package main

import (
	"ProcPlanet/internal/config"
	"ProcPlanet/internal/engine"
	"ProcPlanet/internal/logger"
	"ProcPlanet/internal/params"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	var flags config.Flags
	fset := flag.NewFlagSet("planet", flag.ExitOnError)
	flags.Register(fset)
	shader := fset.String("shader", params.ShaderPlanet.String(), "initial shader (lambert, funny, perlin3D, perlin3D_BlinnPhong, planet)")
	extras := fset.Bool("extra-meshes", false, "also draw the square and cube outside the planet pass")
	_ = fset.Parse(os.Args[1:])

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	flags.Apply(cfg)

	logger.Init(cfg.Log.Level, cfg.Log.Development)
	defer logger.Sync()

	controls := params.NewControls()
	if controls.Shader, err = params.ParseShaderKind(*shader); err != nil {
		logger.Log.Error("Invalid -shader flag", zap.Error(err))
		return 2
	}

	logger.Log.Info("ProcPlanet starting",
		zap.Int32("width", cfg.Window.Width),
		zap.Int32("height", cfg.Window.Height),
		zap.String("assets", cfg.Assets.Dir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := engine.NewApp(cfg, controls, engine.Options{ExtraMeshes: *extras})
	if err := app.Run(ctx); err != nil {
		logger.Log.Error("ProcPlanet stopped", zap.Error(err))
		return 1
	}
	logger.Log.Info("ProcPlanet closed")
	return 0
}
