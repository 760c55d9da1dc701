package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/shiwake/internal/accounts"
	"github.com/cleared-dev/shiwake/internal/classify"
	"github.com/cleared-dev/shiwake/internal/config"
	"github.com/cleared-dev/shiwake/internal/journal"
	"github.com/cleared-dev/shiwake/internal/logging"
	"github.com/cleared-dev/shiwake/internal/normalize"
)

// env is everything a command needs from the books repo.
type env struct {
	root       string
	hasConfig  bool
	cfg        *config.Config
	log        *logrus.Logger
	chart      *accounts.Service
	normalizer *normalize.Normalizer
	classifier *classify.Classifier
}

// loadEnv reads shiwake.yaml and the chart of accounts from the repo,
// falling back to built-in defaults for whichever is missing.
func loadEnv(g *globalFlags) (*env, error) {
	root, err := filepath.Abs(g.repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := config.Path(root)
	_, statErr := os.Stat(cfgPath)
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	level, format := cfg.Log.Level, cfg.Log.Format
	if g.logLevel != "" {
		level = g.logLevel
	}
	if g.logFormat != "" {
		format = g.logFormat
	}
	log, err := logging.Setup(level, format, os.Stderr)
	if err != nil {
		return nil, err
	}

	chart, err := accounts.LoadOrDefault(root, cfg.Business.EntityType)
	if err != nil {
		return nil, err
	}

	aliases := make([]normalize.Alias, len(cfg.Aliases))
	for i, a := range cfg.Aliases {
		aliases[i] = normalize.Alias{From: a.From, To: a.To}
	}

	return &env{
		root:       root,
		hasConfig:  statErr == nil,
		cfg:        cfg,
		log:        log,
		chart:      chart,
		normalizer: normalize.New(aliases),
		classifier: classify.Default(),
	}, nil
}

// builderOptions maps the books section of the config onto the entry builder.
func (e *env) builderOptions() journal.Options {
	opts := journal.DefaultOptions()
	opts.CashAccount = e.cfg.Books.CashAccount
	opts.BankAccount = e.cfg.Books.BankAccount
	opts.ReceivableAccount = e.cfg.Books.ReceivableAccount
	opts.GeneralizeSummary = e.cfg.Books.GeneralizeSummary
	opts.Counterparties = make([]journal.Counterparty, len(e.cfg.Counterparties))
	for i, c := range e.cfg.Counterparties {
		opts.Counterparties[i] = journal.Counterparty{Match: c.Match, Name: c.Name}
	}
	return opts
}
