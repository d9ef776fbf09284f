package alb

import (
	"github.com/linecard/albevents/pkg/convention/event"
)

// FunctionEvents returns the alb definitions among a function's events, in
// declaration order, each tagged with the owning function.
func FunctionEvents(functionName string, entries []event.Entry) []event.Definition {
	definitions := []event.Definition{}

	for _, entry := range entries {
		if entry.Kind != event.Kind || entry.Alb == nil {
			continue
		}

		definition := *entry.Alb
		definition.FunctionName = functionName
		definitions = append(definitions, definition)
	}

	return definitions
}

// AllEvents concatenates FunctionEvents across the registry in function order.
func AllEvents(registry Registry) []event.Definition {
	all := []event.Definition{}

	for _, functionName := range registry.AllFunctions() {
		all = append(all, FunctionEvents(functionName, registry.FunctionEntries(functionName))...)
	}

	return all
}
