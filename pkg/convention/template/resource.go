package template

const (
	TypeLambdaPermission = "AWS::Lambda::Permission"
	TypeTargetGroup      = "AWS::ElasticLoadBalancingV2::TargetGroup"
	TypeListenerRule     = "AWS::ElasticLoadBalancingV2::ListenerRule"
)

// Resource is one entry of a template's Resources section.
type Resource struct {
	Type       string `json:"Type" yaml:"Type"`
	DependsOn  string `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	Properties any    `json:"Properties" yaml:"Properties"`
}

// Resources maps logical ids to resources.
type Resources map[string]Resource

// Merge copies every entry of others into r in argument order. On a key
// collision the later entry replaces the earlier one.
func (r Resources) Merge(others ...Resources) Resources {
	for _, other := range others {
		for logicalId, resource := range other {
			r[logicalId] = resource
		}
	}
	return r
}

type Ref struct {
	Ref string `json:"Ref" yaml:"Ref"`
}

type GetAtt struct {
	GetAtt [2]string `json:"Fn::GetAtt" yaml:"Fn::GetAtt"`
}

func RefTo(logicalId string) Ref {
	return Ref{Ref: logicalId}
}

func Arn(logicalId string) GetAtt {
	return GetAtt{GetAtt: [2]string{logicalId, "Arn"}}
}

type PermissionProperties struct {
	FunctionName GetAtt `json:"FunctionName" yaml:"FunctionName"`
	Action       string `json:"Action" yaml:"Action"`
	Principal    string `json:"Principal" yaml:"Principal"`
}

type TargetGroupProperties struct {
	TargetType string   `json:"TargetType" yaml:"TargetType"`
	Targets    []Target `json:"Targets" yaml:"Targets"`
	Name       string   `json:"Name" yaml:"Name"`
}

type Target struct {
	Id GetAtt `json:"Id" yaml:"Id"`
}

type ListenerRuleProperties struct {
	Actions     []Action    `json:"Actions" yaml:"Actions"`
	Conditions  []Condition `json:"Conditions" yaml:"Conditions"`
	ListenerArn string      `json:"ListenerArn" yaml:"ListenerArn"`
	Priority    int         `json:"Priority" yaml:"Priority"`
}

type Action struct {
	Type           string `json:"Type" yaml:"Type"`
	TargetGroupArn Ref    `json:"TargetGroupArn" yaml:"TargetGroupArn"`
}

type Condition struct {
	Field                   string             `json:"Field" yaml:"Field"`
	Values                  []string           `json:"Values,omitempty" yaml:"Values,omitempty"`
	HttpRequestMethodConfig *ValuesConfig      `json:"HttpRequestMethodConfig,omitempty" yaml:"HttpRequestMethodConfig,omitempty"`
	HttpHeaderConfig        *HttpHeaderConfig  `json:"HttpHeaderConfig,omitempty" yaml:"HttpHeaderConfig,omitempty"`
	QueryStringConfig       *QueryStringConfig `json:"QueryStringConfig,omitempty" yaml:"QueryStringConfig,omitempty"`
	SourceIpConfig          *ValuesConfig      `json:"SourceIpConfig,omitempty" yaml:"SourceIpConfig,omitempty"`
}

type ValuesConfig struct {
	Values []string `json:"Values" yaml:"Values"`
}

type HttpHeaderConfig struct {
	HttpHeaderName string   `json:"HttpHeaderName" yaml:"HttpHeaderName"`
	Values         []string `json:"Values" yaml:"Values"`
}

type QueryStringConfig struct {
	Values []KeyValue `json:"Values" yaml:"Values"`
}

type KeyValue struct {
	Key   string `json:"Key" yaml:"Key"`
	Value string `json:"Value" yaml:"Value"`
}
