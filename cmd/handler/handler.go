package handler

import (
	"context"
	"fmt"

	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/manifest"
	"github.com/linecard/albevents/pkg/convention/template"
	"github.com/linecard/albevents/pkg/sdk"
	"github.com/rs/zerolog/log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-lambda-go/otellambda"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var api sdk.API

// MacroRequest is the event CloudFormation sends to a template macro.
type MacroRequest struct {
	RequestId   string         `json:"requestId"`
	Region      string         `json:"region"`
	AccountId   string         `json:"accountId"`
	TransformId string         `json:"transformId"`
	Fragment    map[string]any `json:"fragment"`
	Params      MacroParams    `json:"params"`
}

type MacroParams struct {
	Stage   string `json:"Stage"`
	Service string `json:"Service"`
}

type MacroResponse struct {
	RequestId    string         `json:"requestId"`
	Status       string         `json:"status"`
	Fragment     map[string]any `json:"fragment"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
}

// Listen for events from the AWS Lambda runtime.
func Listen(tp *sdktrace.TracerProvider) {
	instrumented := otellambda.InstrumentHandler(Handler,
		otellambda.WithTracerProvider(tp),
		otellambda.WithFlusher(tp),
	)

	lambda.Start(instrumented)
}

// Handler expands the alb events of the service passed as a macro parameter
// into the template fragment.
func Handler(ctx context.Context, request MacroRequest) (MacroResponse, error) {
	BeforeEach(ctx, request)
	return Transform(ctx, api.Alb, request), nil
}

// Transform never returns an error; failures are reported to CloudFormation
// through the response status.
func Transform(ctx context.Context, convention alb.Convention, request MacroRequest) MacroResponse {
	ctx, span := otel.Tracer("").Start(ctx, "handler")
	defer span.End()

	span.SetAttributes(
		attribute.String("alb.macro.request", request.RequestId),
		attribute.String("alb.macro.stage", request.Params.Stage),
	)

	response := MacroResponse{
		RequestId: request.RequestId,
		Fragment:  request.Fragment,
	}

	fail := func(err error) MacroResponse {
		log.Error().Err(err).Str("request", request.RequestId).Msg("macro failed")
		span.SetStatus(codes.Error, err.Error())
		response.Status = StatusFailure
		response.ErrorMessage = err.Error()
		return response
	}

	if request.Params.Service == "" {
		return fail(fmt.Errorf("macro parameter Service is required"))
	}

	spec, err := manifest.Decode([]byte(request.Params.Service))
	if err != nil {
		return fail(fmt.Errorf("failed to decode service: %w", err))
	}

	here := umwelt.FromSpec(spec, request.Params.Stage)

	log.Info().
		Str("service", here.Service.Name).
		Str("stage", here.Context.Stage).
		Msg("expanding alb events")

	if err := convention.ValidateRegistry(ctx, spec, here.Context); err != nil {
		return fail(err)
	}

	resources, err := convention.Compile(ctx, spec, here.Context)
	if err != nil {
		return fail(err)
	}

	fragment := template.New()
	if request.Fragment != nil {
		fragment = template.Template{Body: request.Fragment}
	}

	if err := fragment.Merge(resources); err != nil {
		return fail(err)
	}

	response.Status = StatusSuccess
	response.Fragment = fragment.Body

	return response
}
