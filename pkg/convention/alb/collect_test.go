package alb

import (
	"testing"

	"github.com/linecard/albevents/pkg/convention/event"
	fixturemock "github.com/linecard/albevents/pkg/mock/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionEvents(t *testing.T) {
	entries := []event.Entry{
		{Kind: "http"},
		{Kind: event.Kind, Alb: &event.Definition{Priority: 2}},
		{Kind: "sqs"},
		{Kind: event.Kind, Alb: &event.Definition{Priority: 1, FunctionName: "ignored"}},
		{Kind: event.Kind},
	}

	got := FunctionEvents("foo", entries)

	require.Len(t, got, 2)
	assert.Equal(t, event.Definition{FunctionName: "foo", Priority: 2}, got[0])
	assert.Equal(t, event.Definition{FunctionName: "foo", Priority: 1}, got[1])
	assert.Equal(t, "ignored", entries[3].Alb.FunctionName, "input entries are not modified")

	none := FunctionEvents("foo", []event.Entry{{Kind: "http"}})
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Empty(t, FunctionEvents("foo", nil))
}

func TestAllEvents(t *testing.T) {
	service := fixturemock.Service("conditions.yml")

	got := AllEvents(service)

	require.Len(t, got, 3)
	assert.Equal(t, "hello-world", got[0].FunctionName)
	assert.Equal(t, 10, got[0].Priority)
	assert.Equal(t, "hello-world", got[1].FunctionName)
	assert.Equal(t, 11, got[1].Priority)
	assert.Equal(t, "a_very_long_function_name_for_the_target_group", got[2].FunctionName)
	assert.Equal(t, 20, got[2].Priority)
}
