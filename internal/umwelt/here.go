package umwelt

import (
	"context"
	"os"

	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/internal/util"
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/event"
	"github.com/linecard/albevents/pkg/convention/manifest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog/log"
)

// https://en.wikipedia.org/wiki/Umwelt
//
// Umwelt (German for "environment" or "surroundings") is used to configure the compiler based on execution context.

const (
	EnvStage       = "ALB_STAGE"
	EnvListenerArn = "ALB_LISTENER_ARN"
	EnvHost        = "ALB_HOST"

	DefaultStage = "dev"
)

type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type ThisCaller struct {
	Id      string `json:"id,omitempty"`
	Arn     string `json:"arn,omitempty"`
	Account string `json:"account,omitempty"`
	Region  string `json:"region,omitempty"`
}

type ThisService struct {
	Path string           `json:"path"`
	Name string           `json:"name"`
	Spec manifest.Service `json:"-"`
}

type Here struct {
	Caller  ThisCaller    `json:"caller"`
	Git     gitlib.DotGit `json:"git"`
	Service ThisService   `json:"service"`
	Context alb.Context   `json:"context"`
}

// FromPath perceives the service definition at path. A nil STS client skips
// the caller lookup, which keeps offline compilation free of AWS calls.
func FromPath(ctx context.Context, path string, git gitlib.DotGit, awsConfig aws.Config, stsc STSClient) (here Here, err error) {
	// Service
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		if path, err = manifest.Discover(path); err != nil {
			return here, err
		}
	}

	spec, err := manifest.Load(path)
	if err != nil {
		return here, err
	}

	here.Service = ThisService{
		Path: path,
		Name: string(spec.Name),
		Spec: spec,
	}

	// Git
	here.Git = git

	// Caller
	if stsc != nil {
		caller, err := stsc.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return here, err
		}

		here.Caller.Id = aws.ToString(caller.UserId)
		here.Caller.Arn = aws.ToString(caller.Arn)
		here.Caller.Account = aws.ToString(caller.Account)
		here.Caller.Region = awsConfig.Region
	}

	// Context
	here.Context = GetContext(spec, git)
	here.WarnForeignListeners()

	return here, nil
}

// FromSpec perceives an already decoded service definition.
func FromSpec(spec manifest.Service, stage string) Here {
	if stage != "" {
		spec.Provider.Stage = stage
	}

	return Here{
		Service: ThisService{
			Name: string(spec.Name),
			Spec: spec,
		},
		Context: GetContext(spec, gitlib.DotGit{}),
	}
}

func GetContext(spec manifest.Service, git gitlib.DotGit) alb.Context {
	return alb.Context{
		Stage:              GetStage(EnvStage, spec, git),
		DefaultHost:        GetHost(EnvHost, spec),
		DefaultListenerArn: GetListenerArn(EnvListenerArn, spec),
	}
}

// GetStage prefers the environment, then the service provider, then the
// current git branch.
func GetStage(envar string, spec manifest.Service, git gitlib.DotGit) string {
	if stage, exists := os.LookupEnv(envar); exists && stage != "" {
		return stage
	}

	if spec.Provider.Stage != "" {
		return spec.Provider.Stage
	}

	if branch := util.DeSlasher(git.Branch); branch != "" {
		return branch
	}

	return DefaultStage
}

func GetListenerArn(envar string, spec manifest.Service) string {
	if listenerArn, exists := os.LookupEnv(envar); exists && listenerArn != "" {
		return listenerArn
	}

	return spec.Custom.Alb.ListenerArn
}

func GetHost(envar string, spec manifest.Service) event.StringList {
	if hosts, exists := os.LookupEnv(envar); exists {
		if list := util.SplitList(hosts); len(list) > 0 {
			return list
		}
	}

	return spec.Custom.Alb.Host
}

// WarnForeignListeners logs rules pointing at listeners outside the caller's account or region.
func (h Here) WarnForeignListeners() {
	if h.Caller.Account == "" {
		return
	}

	listeners := []string{h.Context.DefaultListenerArn}
	for _, definition := range alb.AllEvents(h.Service.Spec) {
		listeners = append(listeners, definition.ListenerArn)
	}

	for _, listenerArn := range listeners {
		if listenerArn == "" {
			continue
		}

		parsed, err := arn.Parse(listenerArn)
		if err != nil {
			log.Warn().Err(err).Str("listener", listenerArn).Msg("listener is not a valid ARN")
			continue
		}

		if parsed.AccountID != h.Caller.Account || (h.Caller.Region != "" && parsed.Region != h.Caller.Region) {
			log.Warn().
				Str("listener", listenerArn).
				Str("account", h.Caller.Account).
				Str("region", h.Caller.Region).
				Msg("listener belongs to another account or region")
		}
	}
}
