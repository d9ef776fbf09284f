package alb

import (
	"context"

	"github.com/linecard/albevents/pkg/convention/event"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ValidateRegistry collects every alb event of the registry and validates them.
func (c Convention) ValidateRegistry(ctx context.Context, registry Registry, actx Context) error {
	return c.Validate(ctx, AllEvents(registry), actx)
}

// Validate checks the deployment-wide invariants of the definitions and stops
// at the first violation.
func (c Convention) Validate(ctx context.Context, definitions []event.Definition, actx Context) error {
	ctx, span := otel.Tracer("").Start(ctx, "alb.Validate")
	defer span.End()

	span.SetAttributes(attribute.Int("alb.events", len(definitions)))

	checks := []func() error{
		func() error { return checkListener(definitions, actx) },
		func() error { return checkPriority(definitions) },
		func() error { return checkConditions(definitions) },
		func() error { return checkUnique(definitions) },
		func() error { return c.checkRemote(ctx, definitions, actx) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	log.Debug().Int("events", len(definitions)).Msg("alb events valid")

	return nil
}

func checkListener(definitions []event.Definition, actx Context) error {
	var unresolved []string

	for _, definition := range definitions {
		if definition.Resolve(actx.DefaultListenerArn) == "" {
			unresolved = appendUnique(unresolved, definition.FunctionName)
		}
	}

	if len(unresolved) > 0 {
		return ConfigurationError{Functions: unresolved}
	}

	return nil
}

func checkPriority(definitions []event.Definition) error {
	for _, definition := range definitions {
		if definition.Priority <= 0 {
			return MissingFieldError{Field: "priority", FunctionName: definition.FunctionName}
		}
	}

	return nil
}

func checkConditions(definitions []event.Definition) error {
	for _, definition := range definitions {
		if definition.Conditions.Len() == 0 {
			return MissingConditionError{FunctionName: definition.FunctionName}
		}
	}

	return nil
}

func checkUnique(definitions []event.Definition) error {
	owners := map[int][]string{}
	var duplicate []int

	for _, definition := range definitions {
		if len(owners[definition.Priority]) == 1 {
			duplicate = append(duplicate, definition.Priority)
		}
		owners[definition.Priority] = append(owners[definition.Priority], definition.FunctionName)
	}

	if len(duplicate) > 0 {
		return UniquenessError{Priority: duplicate[0], Functions: owners[duplicate[0]]}
	}

	return nil
}

func (c Convention) checkRemote(ctx context.Context, definitions []event.Definition, actx Context) error {
	if len(definitions) == 0 {
		return nil
	}

	if c.Service.Listener == nil {
		log.Warn().Msg("listener lookup disabled, skipping remote listener check")
		return nil
	}

	var listeners []string
	for _, definition := range definitions {
		listeners = appendUnique(listeners, definition.Resolve(actx.DefaultListenerArn))
	}

	for _, listenerArn := range listeners {
		log.Debug().Str("listener", listenerArn).Msg("checking listener")

		if err := c.Service.Listener.Exists(ctx, listenerArn); err != nil {
			return RemoteLookupError{ListenerArn: listenerArn, Err: err}
		}
	}

	return nil
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
