package commands

import (
	"github.com/bartekus/gattgen/cmd/gattgen/internal/clierr"
	"github.com/bartekus/gattgen/internal/collect"
	"github.com/bartekus/gattgen/internal/config"
	"github.com/bartekus/gattgen/internal/gattxml"
	"github.com/bartekus/gattgen/internal/identifier"
	"github.com/bartekus/gattgen/internal/idgen"
	"github.com/bartekus/gattgen/internal/runner"
)

var exitRules = []clierr.Rule{
	{Target: idgen.ErrStale, Code: clierr.ExitStale},
	{Target: idgen.ErrWrite, Code: clierr.ExitWrite},
	{Target: config.ErrInvalid, Code: clierr.ExitUsage},
	{Target: idgen.ErrInvalidJob, Code: clierr.ExitUsage},
	{Target: runner.ErrUnknownJob, Code: clierr.ExitUsage},
	{Target: idgen.ErrNameClash, Code: clierr.ExitInput},
	{Target: collect.ErrInputNotFound, Code: clierr.ExitInput},
	{Target: collect.ErrMalformed, Code: clierr.ExitInput},
	{Target: gattxml.ErrSchema, Code: clierr.ExitInput},
	{Target: identifier.ErrInvalid, Code: clierr.ExitInput},
}

func classify(err error) error {
	return clierr.Classify(err, exitRules...)
}
