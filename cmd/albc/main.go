package main

import (
	"context"

	"github.com/linecard/albevents/cmd/cli"
	"github.com/linecard/albevents/cmd/handler"
	"github.com/linecard/albevents/internal/tracing"
	"github.com/linecard/albevents/internal/util"
)

func main() {
	util.SetLogLevel()

	ctx := context.Background()
	tp, shutdown := tracing.InitOtel(ctx)
	defer shutdown()

	if util.InLambda() {
		handler.Listen(tp)
		return
	}

	cli.Invoke(ctx)
}
