package method

import (
	"context"
	"fmt"
	"os"

	"github.com/linecard/albevents/cmd/cli/param"
	"github.com/linecard/albevents/cmd/cli/view"
	"github.com/linecard/albevents/internal/umwelt"
	"github.com/linecard/albevents/pkg/convention/alb"
	"github.com/linecard/albevents/pkg/convention/template"
	"github.com/linecard/albevents/pkg/sdk"

	"github.com/rs/zerolog/log"
)

func Validate(ctx context.Context, api sdk.API, here umwelt.Here) error {
	if err := api.Alb.ValidateRegistry(ctx, here.Service.Spec, here.Context); err != nil {
		return err
	}

	log.Info().
		Str("service", here.Service.Name).
		Int("rules", len(alb.AllEvents(here.Service.Spec))).
		Msg("alb events are valid")

	return nil
}

func Compile(ctx context.Context, api sdk.API, here umwelt.Here, p *param.Compile) error {
	if err := api.Alb.ValidateRegistry(ctx, here.Service.Spec, here.Context); err != nil {
		return err
	}

	resources, err := api.Alb.Compile(ctx, here.Service.Spec, here.Context)
	if err != nil {
		return err
	}

	tmpl := template.New()
	if p.Template != "" {
		if tmpl, err = template.Load(p.Template); err != nil {
			return err
		}
	}

	if err := tmpl.Merge(resources); err != nil {
		return err
	}

	b, err := tmpl.Render(p.Format)
	if err != nil {
		return err
	}

	if p.Output == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			return err
		}
	} else if err := os.WriteFile(p.Output, b, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	if !p.Quiet {
		fmt.Fprintln(os.Stderr, view.RuleTable(api.Alb, alb.AllEvents(here.Service.Spec), here.Context))
	}

	return nil
}

func PrintConfig(ctx context.Context, api sdk.API, here umwelt.Here) error {
	cJson, err := view.FromHere(here).Json()
	if err != nil {
		return err
	}

	fmt.Println(cJson)
	return nil
}
