package param

type GlobalOpts struct {
	Stage       string `arg:"-s,--stage" help:"deployment stage used in target group names"`
	ListenerArn string `arg:"-l,--listener-arn" help:"default listener for rules that name none"`
	Host        string `arg:"--host" help:"comma separated default host header values"`
	SkipRemote  bool   `arg:"--skip-remote" help:"do not call AWS, skip the listener existence check"`
}

type ServiceArg struct {
	Path string `arg:"positional" help:"path to serverless.yml or its directory" default:"."`
}

type Validate struct {
	ServiceArg
}

type Compile struct {
	Template string `arg:"-t,--template" help:"merge into this CloudFormation template instead of a new one"`
	Output   string `arg:"-o,--output" help:"write the template here instead of stdout"`
	Format   string `arg:"-f,--format" help:"json or yaml" default:"json"`
	Quiet    bool   `arg:"-q,--quiet" help:"do not print the rule summary"`
	ServiceArg
}

type Config struct {
	ServiceArg
}
