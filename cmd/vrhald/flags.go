package main

import (
	"flag"
	"fmt"
	"os"

	"vrhal/internal/config"
	"vrhal/pkg/types"
)

// flags wires the command line to the config layer. File values fill in
// anything the command line left at its default; explicit flags always win.
type flags struct {
	fs       *flag.FlagSet
	addr     *string
	cfgPath  *string
	near     *float64
	far      *float64
	simulate *bool
	logLevel *string
	appKind  *string
}

func newFlags(defaultAddr string) *flags {
	f := &flags{fs: flag.NewFlagSet("vrhald", flag.ExitOnError)}
	f.addr = f.fs.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	f.cfgPath = f.fs.String("config", "", "Optional config file (.yaml, .toml or .json)")
	f.near = f.fs.Float64("near", 0.1, "Near clipping plane in meters")
	f.far = f.fs.Float64("far", 100, "Far clipping plane in meters")
	f.simulate = f.fs.Bool("simulate", false, "Use the simulated runtime instead of a VR driver")
	f.logLevel = f.fs.String("log-level", "info", "Log level: trace, debug, info, warn or error")
	f.appKind = f.fs.String("app-kind", "background", "Application kind: scene, overlay or background")
	return f
}

func (f *flags) Parse(args []string) {
	_ = f.fs.Parse(args)
}

// resolve merges the config file (if any) under the command line.
func (f *flags) resolve() config.Config {
	cfg := config.Config{
		Addr:     *f.addr,
		NearClip: float32(*f.near),
		FarClip:  float32(*f.far),
		Simulate: *f.simulate,
		LogLevel: *f.logLevel,
		AppKind:  *f.appKind,
	}
	if *f.cfgPath == "" {
		return cfg
	}

	fileCfg, err := config.Load(*f.cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config %s: %v\n", *f.cfgPath, err)
		os.Exit(1)
	}

	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if !set["addr"] && fileCfg.Addr != "" {
		cfg.Addr = fileCfg.Addr
	}
	if !set["near"] && fileCfg.NearClip != 0 {
		cfg.NearClip = fileCfg.NearClip
	}
	if !set["far"] && fileCfg.FarClip != 0 {
		cfg.FarClip = fileCfg.FarClip
	}
	if !set["simulate"] && fileCfg.Simulate {
		cfg.Simulate = true
	}
	if !set["log-level"] && fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if !set["app-kind"] && fileCfg.AppKind != "" {
		cfg.AppKind = fileCfg.AppKind
	}
	return cfg
}

func parseAppKind(s string) (types.ApplicationKind, error) {
	switch s {
	case "scene":
		return types.ApplicationScene, nil
	case "overlay":
		return types.ApplicationOverlay, nil
	case "background":
		return types.ApplicationBackground, nil
	default:
		return 0, fmt.Errorf("unknown application kind %q", s)
	}
}
