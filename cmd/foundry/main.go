// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/gitter-badger/foundry/config"
	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/kv"
	"github.com/gitter-badger/foundry/metrics"
	"github.com/gitter-badger/foundry/scheme"
	"github.com/gitter-badger/foundry/state"
	"github.com/gitter-badger/foundry/trie"
)

var (
	version   string
	gitCommit string
	log       = log15.New()
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "Foundry",
		Usage:   "Foundry state tool",
		Flags: []cli.Flag{
			chainFlag,
			configFlag,
			dataDirFlag,
			verbosityFlag,
			metricsFlag,
		},
		Action: initAction,
		Commands: []cli.Command{
			{
				Name:   "root",
				Usage:  "compute and print the genesis state root of a chain",
				Flags:  []cli.Flag{chainFlag, configFlag, verbosityFlag},
				Action: rootAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initAction seeds the genesis state of the configured chain, commits it and
// saves its snapshot into the data directory, so later runs can seed their
// caches from it.
func initAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	initLogger(cfg)
	if cfg.Metrics {
		metrics.InitializePrometheusMetrics()
	}

	sch, err := cfg.Chain.Scheme()
	if err != nil {
		return err
	}
	log.Info("loaded chain scheme", "name", sch.Name, "network", sch.Params.NetworkID)

	cache, root, err := seedGenesis(sch)
	if err != nil {
		return err
	}

	store, err := kv.Open(filepath.Join(cfg.DataDir, "state.db"), kv.Options{CacheSize: 64})
	if err != nil {
		return err
	}
	defer func() {
		log.Info("closing state database...")
		if err := store.Close(); err != nil {
			log.Warn("close state database", "err", err)
		}
	}()

	stater := state.NewStater(store)
	if err := stater.Save(root, cache); err != nil {
		return err
	}
	log.Info("genesis state ready", "root", root, "chain", sch.Name)
	return nil
}

// rootAction computes the genesis state root without touching any database.
func rootAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	initLogger(cfg)

	sch, err := cfg.Chain.Scheme()
	if err != nil {
		return err
	}
	_, root, err := seedGenesis(sch)
	if err != nil {
		return err
	}
	fmt.Println(root)
	return nil
}

func seedGenesis(sch *scheme.Scheme) (*state.TopCache, foundry.Bytes32, error) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	if err != nil {
		return nil, foundry.Bytes32{}, err
	}
	cache, err := sch.SeedState(tr)
	if err != nil {
		return nil, foundry.Bytes32{}, err
	}
	root, err := tr.Commit(0)
	if err != nil {
		return nil, foundry.Bytes32{}, err
	}
	return cache, root, nil
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if chain := ctx.String(chainFlag.Name); chain != "" {
		cfg.Chain = scheme.ParseChainType(chain)
	}
	if dataDir := ctx.String(dataDirFlag.Name); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if v := ctx.Int(verbosityFlag.Name); v >= 0 {
		cfg.Verbosity = v
	}
	if ctx.Bool(metricsFlag.Name) {
		cfg.Metrics = true
	}
	return cfg, nil
}

func initLogger(cfg config.Config) {
	lvl := log15.Lvl(cfg.Verbosity)
	if lvl > log15.LvlDebug {
		lvl = log15.LvlDebug
	}
	log15.Root().SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))
}
