package alb

import (
	"context"

	"github.com/linecard/albevents/pkg/convention/event"
	"github.com/linecard/albevents/pkg/convention/template"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Compile emits the permission, target group and listener rules of every
// function that declares alb events.
func (c Convention) Compile(ctx context.Context, registry Registry, actx Context) (template.Resources, error) {
	_, span := otel.Tracer("").Start(ctx, "alb.Compile")
	defer span.End()

	resources := template.Resources{}

	for _, functionName := range registry.AllFunctions() {
		definitions := FunctionEvents(functionName, registry.FunctionEntries(functionName))
		if len(definitions) == 0 {
			continue
		}

		log.Debug().
			Str("function", functionName).
			Int("rules", len(definitions)).
			Msg("compiling alb events")

		resources.Merge(c.CompileFunction(functionName, actx))

		for _, definition := range definitions {
			rule, err := c.CompileRule(definition, actx)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			resources.Merge(rule)
		}
	}

	span.SetAttributes(attribute.Int("alb.resources", len(resources)))

	return resources, nil
}

// CompileFunction emits the per-function permission and target group.
func (c Convention) CompileFunction(functionName string, actx Context) template.Resources {
	lambdaLogicalId := c.Naming.LambdaLogicalId(functionName)
	permissionLogicalId := c.PermissionLogicalId(functionName)

	return template.Resources{
		permissionLogicalId: {
			Type: template.TypeLambdaPermission,
			Properties: template.PermissionProperties{
				FunctionName: template.Arn(lambdaLogicalId),
				Action:       InvokeAction,
				Principal:    Principal,
			},
		},
		c.TargetGroupLogicalId(functionName): {
			Type:      template.TypeTargetGroup,
			DependsOn: permissionLogicalId,
			Properties: template.TargetGroupProperties{
				TargetType: TargetTypeLambda,
				Targets: []template.Target{
					{Id: template.Arn(lambdaLogicalId)},
				},
				Name: TargetGroupName(functionName, actx.Stage),
			},
		},
	}
}

// CompileRule emits the listener rule of one definition.
func (c Convention) CompileRule(definition event.Definition, actx Context) (template.Resources, error) {
	conditions := Conditions(definition.Conditions, actx.DefaultHost)
	if len(conditions) == 0 {
		return nil, MissingConditionError{FunctionName: definition.FunctionName}
	}

	return template.Resources{
		c.ListenerRuleLogicalId(definition.FunctionName, definition.Priority): {
			Type: template.TypeListenerRule,
			Properties: template.ListenerRuleProperties{
				Actions: []template.Action{
					{
						Type:           "forward",
						TargetGroupArn: template.RefTo(c.TargetGroupLogicalId(definition.FunctionName)),
					},
				},
				Conditions:  conditions,
				ListenerArn: definition.Resolve(actx.DefaultListenerArn),
				Priority:    definition.Priority,
			},
		},
	}, nil
}

// Conditions translates clauses in the fixed order path, host, method,
// header, query, ip. Malformed clauses produce nothing.
func Conditions(clauses *event.Conditions, defaultHost event.StringList) []template.Condition {
	conditions := []template.Condition{}

	if clauses == nil {
		clauses = &event.Conditions{}
	}

	if clauses.Path != "" {
		conditions = append(conditions, template.Condition{
			Field:  "path-pattern",
			Values: []string{clauses.Path},
		})
	}

	hosts := make([]string, 0, len(clauses.Host)+len(defaultHost))
	for _, host := range append(append([]string{}, clauses.Host...), defaultHost...) {
		if host != "" {
			hosts = append(hosts, host)
		}
	}

	if len(hosts) > 0 {
		conditions = append(conditions, template.Condition{
			Field:  "host-header",
			Values: hosts,
		})
	}

	if len(clauses.Method) > 0 {
		conditions = append(conditions, template.Condition{
			Field: "http-request-method",
			HttpRequestMethodConfig: &template.ValuesConfig{
				Values: clauses.Method,
			},
		})
	}

	if header := clauses.Header; header != nil && header.Name != "" && len(header.Values) > 0 {
		conditions = append(conditions, template.Condition{
			Field: "http-header",
			HttpHeaderConfig: &template.HttpHeaderConfig{
				HttpHeaderName: header.Name,
				Values:         header.Values,
			},
		})
	}

	if clauses.Query != nil {
		values := make([]template.KeyValue, 0, len(clauses.Query))
		for _, param := range clauses.Query {
			values = append(values, template.KeyValue{Key: param.Key, Value: param.Value})
		}

		conditions = append(conditions, template.Condition{
			Field: "query-string",
			QueryStringConfig: &template.QueryStringConfig{
				Values: values,
			},
		})
	}

	if len(clauses.Ip) > 0 {
		conditions = append(conditions, template.Condition{
			Field: "source-ip",
			SourceIpConfig: &template.ValuesConfig{
				Values: clauses.Ip,
			},
		})
	}

	return conditions
}

// TargetGroupName cuts the function name so that "<name>-<stage>" fits the
// target group name limit. The stage is kept whole.
func TargetGroupName(functionName, stage string) string {
	room := TargetGroupNameLimit - (len([]rune(stage)) + 1)
	if room < 0 {
		room = 0
	}

	name := []rune(functionName)
	if len(name) > room {
		name = name[:room]
	}

	return string(name) + "-" + stage
}
