package router

import (
	"context"
	"os"

	"github.com/linecard/albevents/cmd/cli/method"
	"github.com/linecard/albevents/cmd/cli/param"
	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/pkg/sdk"

	"github.com/alexflint/go-arg"
)

type Root struct {
	Validate *param.Validate `arg:"subcommand:validate" help:"Validate alb events"`
	Compile  *param.Compile  `arg:"subcommand:compile" help:"Compile alb events into CloudFormation"`
	Config   *param.Config   `arg:"subcommand:config" help:"Print configuration"`
	param.GlobalOpts
}

// Path is the service location named by whichever subcommand was given.
func (c Root) Path() string {
	switch {
	case c.Validate != nil:
		return c.Validate.Path
	case c.Compile != nil:
		return c.Compile.Path
	case c.Config != nil:
		return c.Config.Path
	default:
		return "."
	}
}

func (c Root) Route(ctx context.Context, api sdk.API, here umwelt.Here) error {
	switch {
	case c.Validate != nil:
		return method.Validate(ctx, api, here)

	case c.Compile != nil:
		return method.Compile(ctx, api, here, c.Compile)

	case c.Config != nil:
		return method.PrintConfig(ctx, api, here)

	default:
		arg.MustParse(&c).WriteHelp(os.Stdout)
		return nil
	}
}
