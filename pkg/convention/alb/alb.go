package alb

import (
	"context"
	"strconv"

	"github.com/linecard/albevents/pkg/convention/event"
)

const (
	Principal        = "elasticloadbalancing.amazonaws.com"
	InvokeAction     = "lambda:InvokeFunction"
	TargetTypeLambda = "lambda"

	// TargetGroupNameLimit is the ELBv2 ceiling on target group names.
	TargetGroupNameLimit = 32
)

type Registry interface {
	AllFunctions() []string
	FunctionEntries(functionName string) []event.Entry
}

type Naming interface {
	NormalizedFunctionName(functionName string) string
	LambdaLogicalId(functionName string) string
}

type ListenerService interface {
	Exists(ctx context.Context, listenerArn string) error
}

// Context is the deployment-wide input shared by every rule.
type Context struct {
	Stage              string           `json:"stage"`
	DefaultHost        event.StringList `json:"defaultHost,omitempty"`
	DefaultListenerArn string           `json:"defaultListenerArn,omitempty"`
}

type Services struct {
	Listener ListenerService
}

type Convention struct {
	Naming  Naming
	Service Services
}

// FromServices builds the convention. A nil listener service disables the
// remote listener check.
func FromServices(n Naming, l ListenerService) Convention {
	return Convention{
		Naming: n,
		Service: Services{
			Listener: l,
		},
	}
}

func (c Convention) PermissionLogicalId(functionName string) string {
	return c.Naming.NormalizedFunctionName(functionName) + "LambdaPermissionAlb"
}

func (c Convention) TargetGroupLogicalId(functionName string) string {
	return c.Naming.NormalizedFunctionName(functionName) + "LambdaTargetGroup"
}

func (c Convention) ListenerRuleLogicalId(functionName string, priority int) string {
	return c.Naming.NormalizedFunctionName(functionName) + "ListenerRule" + strconv.Itoa(priority)
}
