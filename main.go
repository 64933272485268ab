package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

var verbose = false

func errorPrint(a ...interface{}) {
	log.Printf("[ERROR] %s", fmt.Sprintln(a...))
}

func debugPrint(a ...interface{}) {
	if verbose {
		log.Printf("[DEBUG] %s", fmt.Sprintln(a...))
	}
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the TOML config file")
	statePath := flag.String("state", "", "override the state file or database path")
	backend := flag.String("backend", "", "state backend: file, sqlite or memory")
	debug := flag.Bool("debug", false, "write debug logs to hueforge.log")
	flag.Parse()

	log.SetFlags(0)
	log.SetOutput(io.Discard)

	cfg, cfgErr := loadConfig(*configPath)
	if *statePath != "" {
		cfg.StatePath = cfg.expandPath(*statePath)
	}
	if *backend != "" {
		cfg.StateBackend = *backend
	}
	if *debug && cfg.LogFile == "" {
		cfg.LogFile = "hueforge.log"
	}
	verbose = cfg.Verbose || *debug

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hueforge")
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "open log file"))
			os.Exit(1)
		}
		defer f.Close()
	}
	if cfgErr != nil {
		errorPrint("config:", cfgErr)
	}

	kv, err := openKV(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "open state"))
		os.Exit(1)
	}
	defer closeKV(kv)

	store := NewStore(kv, log.Default())
	p := tea.NewProgram(
		initialModel(cfg, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		errorPrint("program:", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initialModel(cfg *Config, store *Store) model {
	m := model{
		config: cfg,
		store:  store,
		live:   &liveView{out: store.Outputs()},
		shadow: defaultShadow(),
		now:    time.Now,
	}
	live := m.live
	store.Subscribe(func(out Outputs) {
		live.out = out
		live.updates++
	})
	m.layout = newLayout(cfg, len(m.panelLines()))
	m.picker = NewPicker(store, m.layout.surfaceRect(), m.layout.hueRect())
	return m
}
