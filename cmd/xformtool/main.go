// xformtool builds, inspects and applies 3D affine transforms from the
// command line.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/vecxform/internal/config"
	"github.com/Faultbox/vecxform/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	args = args[1:]

	var cmdErr error
	switch command {
	case "run":
		cmdErr = cmdRun(args, cfg, os.Stdout)
	case "rotate", "rot":
		cmdErr = cmdRotate(args, cfg, os.Stdout)
	case "angle":
		cmdErr = cmdAngle(args, cfg, os.Stdout)
	case "invert", "inv":
		cmdErr = cmdInvert(args, cfg, os.Stdout)
	case "view":
		cmdErr = cmdView(args, cfg, os.Stdout)
	case "config":
		cmdErr = cmdConfig(args, cfg, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		logger.Debug("command failed", zap.String("command", command), zap.Error(cmdErr))
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xformtool - 3D affine transform utility

Usage:
  xformtool [flags] <command> [arguments]

Commands:
  run <pipeline.yaml>                Build a pipeline and apply it
  rotate [-gimbal] <x,y,z> <x,y,z>   Rotation taking the first direction onto the second
  angle <x,y,z> <x,y,z>              Angle between two directions
  invert <16 numbers>                Inverse of an affine matrix, rows first
  view [flags]                       Orbit camera: view transform, pick ray, ground point
  config show | save [path]          Print or save the effective configuration

Flags:
  -config <path>       Config file (default ./xformtool.yaml, then the user config dir)
  -debug               Enable debug logging
  -log-file <path>     Also write logs to a rotating file
  -precision <n>       Digits after the decimal point
  -convention <c>      row (v*M) or column (M*v) for printed and parsed matrices
  -strict              Fail on singular inverses and zero axes
  -inverse             Print the inverse of every transform
  -gl                  Print the column-major float32 layout for GL uniforms

Examples:
  xformtool run arm.yaml
  xformtool rotate -gimbal 0,0,-1 1,0,0
  xformtool angle 1,0,0 1,1,0
  xformtool view -center 0,1,0 -distance 5 -pitch 20 -yaw 45 -pick 400,300
  xformtool view -fit -1,-1,-1,1,1,1 -drag 40,0 -zoom 2
  xformtool -precision 3 -strict config save
  xformtool -convention column invert 1 0 0 4  0 1 0 5  0 0 1 6  0 0 0 1`)
}
