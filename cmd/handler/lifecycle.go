package handler

import (
	"context"

	"github.com/linecard/albevents/internal/util"
	"github.com/linecard/albevents/pkg/sdk"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/rs/zerolog/log"
)

func BeforeEach(ctx context.Context, request MacroRequest) {
	var err error

	retryLogger := util.RetryLogger{
		Log: &log.Logger,
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithLogger(&retryLogger),
		awsconfig.WithClientLogMode(aws.LogRetries))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	if request.Region != "" {
		awsConfig.Region = request.Region
	}

	if api, err = sdk.Init(ctx, awsConfig, sdk.Options{}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SDK")
	}
}
