package sdk

import (
	"context"

	// services
	"github.com/linecard/albevents/pkg/service/listener"

	// conventions
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/naming"

	// clients
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type Clients struct {
	StsClient   *sts.Client
	ElbV2Client *elasticloadbalancingv2.Client
}

type Services struct {
	Listener listener.Service
}

type Conventions struct {
	Alb alb.Convention
}

type API struct {
	Conventions
	Clients Clients
}

type Options struct {
	// SkipRemote compiles without asking ELBv2 whether listeners exist.
	SkipRemote bool
}

func Init(ctx context.Context, awsConfig aws.Config, opts Options) (API, error) {
	clients, err := InitClients(ctx, awsConfig)
	if err != nil {
		return API{}, err
	}

	services, err := InitServices(ctx, clients)
	if err != nil {
		return API{}, err
	}

	conventions, err := InitConventions(ctx, opts, services)
	if err != nil {
		return API{}, err
	}

	return API{
		Conventions: conventions,
		Clients:     clients,
	}, nil
}

func InitConventions(ctx context.Context, opts Options, services Services) (Conventions, error) {
	var listenerService alb.ListenerService
	if !opts.SkipRemote {
		listenerService = services.Listener
	}

	return Conventions{
		Alb: alb.FromServices(naming.Naming{}, listenerService),
	}, nil
}

func InitServices(ctx context.Context, clients Clients) (Services, error) {
	return Services{
		Listener: listener.FromClients(clients.ElbV2Client),
	}, nil
}

func InitClients(ctx context.Context, awsConfig aws.Config) (Clients, error) {
	return Clients{
		StsClient:   sts.NewFromConfig(awsConfig),
		ElbV2Client: elasticloadbalancingv2.NewFromConfig(awsConfig),
	}, nil
}
