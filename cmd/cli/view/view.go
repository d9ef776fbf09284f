package view

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/linecard/albevents/internal/gitlib"
	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/event"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type ConfigView struct {
	Caller  umwelt.ThisCaller  `json:"caller"`
	Git     gitlib.DotGit      `json:"git"`
	Service umwelt.ThisService `json:"service"`
	Context alb.Context        `json:"context"`
	Rules   []event.Definition `json:"rules"`
}

func FromHere(here umwelt.Here) ConfigView {
	return ConfigView{
		Caller:  here.Caller,
		Git:     here.Git,
		Service: here.Service,
		Context: here.Context,
		Rules:   alb.AllEvents(here.Service.Spec),
	}
}

func (c ConfigView) Json() (string, error) {
	j, err := json.MarshalIndent(c, "", "  ")
	return string(j), err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RuleTable summarizes one row per compiled listener rule.
func RuleTable(convention alb.Convention, definitions []event.Definition, actx alb.Context) string {
	rows := make([][]string, 0, len(definitions))
	for _, definition := range definitions {
		rows = append(rows, []string{
			definition.FunctionName,
			strconv.Itoa(definition.Priority),
			ListenerName(definition.Resolve(actx.DefaultListenerArn)),
			strings.Join(definition.Conditions.Keys(), ","),
			convention.ListenerRuleLogicalId(definition.FunctionName, definition.Priority),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(ruleStyle).
		Headers("FUNCTION", "PRIORITY", "LISTENER", "CONDITIONS", "RULE").
		Rows(rows...).
		String()
}

// ruleStyle styles the header, which lipgloss passes as row 0.
func ruleStyle(row, col int) lipgloss.Style {
	if row == 0 {
		return headerStyle
	}
	return cellStyle
}

// ListenerName shortens a listener ARN to its load balancer name and listener id.
func ListenerName(listenerArn string) string {
	parsed, err := arn.Parse(listenerArn)
	if err != nil {
		return listenerArn
	}

	// listener/app/<name>/<lb id>/<listener id>
	parts := strings.Split(parsed.Resource, "/")
	if len(parts) != 5 {
		return parsed.Resource
	}

	return parts[2] + "/" + parts[4]
}
