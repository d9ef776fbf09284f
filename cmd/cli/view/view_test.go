package view

import (
	"testing"

	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/naming"
	mockfixture "github.com/linecard/albevents/pkg/mock/fixture"
	mockumwelt "github.com/linecard/albevents/pkg/mock/umwelt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerName(t *testing.T) {
	assert.Equal(t, "my-load-balancer/f2f7dc8efc522ab2", ListenerName(mockfixture.ListenerArn))
	assert.Equal(t, "not-an-arn", ListenerName("not-an-arn"))
}

func TestRuleTable(t *testing.T) {
	here := mockumwelt.FromFixture("conditions.yml", gitlib.DotGit{Branch: "main"})
	convention := alb.FromServices(naming.Naming{}, nil)

	rendered := RuleTable(convention, alb.AllEvents(here.Service.Spec), here.Context)

	assert.Contains(t, rendered, "FUNCTION")
	assert.Contains(t, rendered, "CONDITIONS")
	assert.Contains(t, rendered, "HelloDashworldListenerRule10")
	assert.Contains(t, rendered, "internal/a2f7dc8efc522ab3")
	assert.Contains(t, rendered, "header,query,ip")
	assert.NotContains(t, rendered, "worker")
}

func TestRuleStyle(t *testing.T) {
	assert.True(t, ruleStyle(0, 0).GetBold())
	assert.True(t, ruleStyle(0, 4).GetBold())
	assert.False(t, ruleStyle(1, 0).GetBold())
	assert.False(t, ruleStyle(2, 3).GetBold())
}

func TestConfigView(t *testing.T) {
	here := mockumwelt.FromFixture("basic.yml", gitlib.DotGit{Branch: "feature/alb"})

	j, err := FromHere(here).Json()
	require.NoError(t, err)

	assert.Contains(t, j, `"stage": "feature-alb"`)
	assert.Contains(t, j, `"functionName": "foo"`)
	assert.Contains(t, j, `"account": "123456789012"`)
}
