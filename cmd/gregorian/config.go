// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/gregorian"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Policy string `subcmd:"policy,,'handling of invalid dates: fallback or strict, overrides the policy in the config file'"`
	Config string `subcmd:"config,,'yaml configuration file'"`
}

// Config represents the optional configuration file.
type Config struct {
	Policy  gregorian.Policy      `yaml:"policy"`
	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

// configure reads the configuration file, if any, and applies the
// command line flags to it. Logging is configured from the file when
// one is specified and from the flags otherwise.
func (cf *CommonFlags) configure(ctx context.Context) (Config, error) {
	cfg := Config{Logging: cf.LoggingConfig()}
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(cf.Policy) > 0 {
		p, err := gregorian.ParsePolicy(cf.Policy)
		if err != nil {
			return Config{}, err
		}
		cfg.Policy = p
	}
	return cfg, nil
}

// setup returns a context carrying the configured logger and the policy
// to use for invalid dates. The logger also receives the diagnostics
// generated by the gregorian package until the returned function is
// called.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, gregorian.Policy, func(), error) {
	cfg, err := cf.configure(ctx)
	if err != nil {
		return ctx, gregorian.Fallback, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, gregorian.Fallback, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	prev := gregorian.SetLogger(logger.Logger)
	return ctx, cfg.Policy, func() {
		gregorian.SetLogger(prev)
		logger.Close()
	}, nil
}
