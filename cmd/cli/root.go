package cli

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/linecard/albevents/cmd/cli/router"
	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/internal/util"
	"github.com/linecard/albevents/pkg/sdk"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Invoke(ctx context.Context) {
	var err error
	var api sdk.API
	var here umwelt.Here
	var stsc umwelt.STSClient

	ctx, span := otel.Tracer("").Start(ctx, "albc")
	defer span.End()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	var root router.Root
	arg.MustParse(&root)

	configEnv(root)

	retryLogger := util.RetryLogger{
		Log: &log.Logger,
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithLogger(&retryLogger),
		awsconfig.WithClientLogMode(aws.LogRetries))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	if api, err = sdk.Init(ctx, awsConfig, sdk.Options{SkipRemote: root.SkipRemote}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SDK")
	}

	if !root.SkipRemote {
		stsc = api.Clients.StsClient
	}

	git, err := gitlib.FromPath(root.Path())
	if err != nil {
		log.Debug().Err(err).Msg("not in a git repository, stage will not follow the branch")
	}

	if here, err = umwelt.FromPath(ctx, root.Path(), git, awsConfig, stsc); err != nil {
		log.Fatal().Err(err).Msg("failed to load service definition")
	}

	if err := root.Route(ctx, api, here); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Fatal().Err(err).Strs("argv", os.Args).Msgf("failed command")
	}
}

// Take options given to the CLI and export them to their respective environment variables.
func configEnv(root router.Root) {
	if root.GlobalOpts.Stage != "" {
		os.Setenv(umwelt.EnvStage, root.GlobalOpts.Stage)
	}

	if root.GlobalOpts.ListenerArn != "" {
		os.Setenv(umwelt.EnvListenerArn, root.GlobalOpts.ListenerArn)
	}

	if root.GlobalOpts.Host != "" {
		os.Setenv(umwelt.EnvHost, root.GlobalOpts.Host)
	}
}
