package alb

import (
	"fmt"
	"strings"
)

// ConfigurationError reports rules whose listener cannot be resolved.
type ConfigurationError struct {
	Functions []string
}

func (e ConfigurationError) Error() string {
	msg := "a listener ARN is required for ALB events, set custom.alb.listenerArn or listenerArn on each event"
	if len(e.Functions) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (functions: %s)", msg, strings.Join(e.Functions, ", "))
}

type MissingFieldError struct {
	Field        string
	FunctionName string
}

func (e MissingFieldError) Error() string {
	if e.FunctionName == "" {
		return fmt.Sprintf("property '%s' is required of ALB events", e.Field)
	}
	return fmt.Sprintf("property '%s' is required of ALB events (function %s)", e.Field, e.FunctionName)
}

type MissingConditionError struct {
	FunctionName string
}

func (e MissingConditionError) Error() string {
	return fmt.Sprintf("at least one condition must be set for ALB events of function %s", e.FunctionName)
}

type UniquenessError struct {
	Priority  int
	Functions []string
}

func (e UniquenessError) Error() string {
	return fmt.Sprintf("property 'priority' must be unique, %d is used by: %s", e.Priority, strings.Join(e.Functions, ", "))
}

// RemoteLookupError wraps a failed or negative listener existence check.
type RemoteLookupError struct {
	ListenerArn string
	Err         error
}

func (e RemoteLookupError) Error() string {
	return fmt.Sprintf("listener %s not found: %v", e.ListenerArn, e.Err)
}

func (e RemoteLookupError) Unwrap() error {
	return e.Err
}
