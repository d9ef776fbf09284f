package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linecard/albevents/internal/util"
	"github.com/linecard/albevents/pkg/convention/event"

	"gopkg.in/yaml.v3"
)

// Candidates are the service file names looked up by Discover, in order.
var Candidates = []string{"serverless.yml", "serverless.yaml", "serverless.json"}

type Service struct {
	Name      ServiceName `json:"service" yaml:"service"`
	Provider  Provider    `json:"provider" yaml:"provider"`
	Custom    Custom      `json:"custom" yaml:"custom"`
	Functions Functions   `json:"functions" yaml:"functions"`
}

// ServiceName accepts both "service: name" and the older "service: {name: name}".
type ServiceName string

type Provider struct {
	Name   string `json:"name" yaml:"name"`
	Stage  string `json:"stage,omitempty" yaml:"stage"`
	Region string `json:"region,omitempty" yaml:"region"`
}

type Custom struct {
	Alb Alb `json:"alb" yaml:"alb"`
}

type Alb struct {
	ListenerArn string           `json:"listenerArn,omitempty" yaml:"listenerArn"`
	Host        event.StringList `json:"host,omitempty" yaml:"host"`
}

type Function struct {
	Name    string        `json:"name" yaml:"-"`
	Handler string        `json:"handler,omitempty" yaml:"handler"`
	Events  []event.Entry `json:"-" yaml:"events"`
}

// Functions keeps the declaration order of the functions mapping.
type Functions []Function

// Load reads a service definition. YAML and JSON are both decoded by the YAML
// parser, JSON being a subset of it.
func Load(path string) (Service, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Service{}, err
	}

	service, err := Decode(b)
	if err != nil {
		return Service{}, fmt.Errorf("%s: %w", path, err)
	}

	return service, nil
}

func Decode(b []byte) (Service, error) {
	var service Service
	if err := yaml.Unmarshal(b, &service); err != nil {
		return Service{}, err
	}

	return service, nil
}

// Discover returns the first service file found in dir.
func Discover(dir string) (string, error) {
	for _, candidate := range Candidates {
		path := filepath.Join(dir, candidate)
		if util.PathExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("no service definition found in %s, looked for: %v", dir, Candidates)
}

func (s Service) AllFunctions() []string {
	names := make([]string, 0, len(s.Functions))
	for _, function := range s.Functions {
		names = append(names, function.Name)
	}
	return names
}

func (s Service) FunctionEntries(functionName string) []event.Entry {
	function, ok := s.Function(functionName)
	if !ok {
		return nil
	}
	return function.Events
}

func (s Service) Function(functionName string) (Function, bool) {
	for _, function := range s.Functions {
		if function.Name == functionName {
			return function, true
		}
	}
	return Function{}, false
}

func (n *ServiceName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*n = ServiceName(value.Value)
		return nil
	case yaml.MappingNode:
		var named struct {
			Name string `yaml:"name"`
		}
		if err := value.Decode(&named); err != nil {
			return err
		}
		*n = ServiceName(named.Name)
		return nil
	default:
		return fmt.Errorf("line %d: service must be a name or a mapping with a name", value.Line)
	}
}

func (f *Functions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*f = nil
		return nil
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: functions must be a mapping", value.Line)
	}

	functions := make(Functions, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var function Function
		if err := value.Content[i+1].Decode(&function); err != nil {
			return fmt.Errorf("function %s: %w", value.Content[i].Value, err)
		}
		function.Name = value.Content[i].Value
		functions = append(functions, function)
	}

	*f = functions
	return nil
}
