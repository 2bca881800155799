package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/titianlabs/pagekit/pkg/config"
	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/editor"
	"github.com/titianlabs/pagekit/pkg/editors/tui"
	"github.com/titianlabs/pagekit/pkg/render"
	"github.com/titianlabs/pagekit/pkg/renderers/site"
	"github.com/titianlabs/pagekit/pkg/schema"
	"github.com/titianlabs/pagekit/pkg/store"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(os.Getenv("PAGEKIT_CONFIG"))
	if err != nil {
		klog.Exitf("load config: %v", err)
	}

	ctx := context.Background()
	var runErr error
	switch args[0] {
	case "list":
		runErr = runList(ctx, cfg)
	case "create":
		runErr = runCreate(ctx, cfg, args[1:])
	case "edit":
		runErr = runEdit(ctx, cfg, args[1:])
	case "render":
		runErr = runRender(ctx, cfg, args[1:])
	case "delete":
		runErr = runDelete(ctx, cfg, args[1:])
	case "schema":
		runErr = runSchema(args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		if errors.Is(runErr, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		klog.Exitf("%s: %v", args[0], runErr)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pagekit <list|create|edit|render|delete|schema> [flags]")
}

func openStore(cfg *config.Config) (*store.GormStore, error) {
	if dir := filepath.Dir(cfg.Database.DSN); dir != "." && cfg.Database.DSN != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return store.Open(cfg.Database.DSN)
}

func runList(ctx context.Context, cfg *config.Config) error {
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	pages, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range pages {
		fmt.Printf("%-36s  %-10s  %-9s  %s\n", p.ID, p.TemplateName, p.Status, p.Slug)
	}
	return nil
}

func runCreate(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	templateName := fs.String("template", string(schema.TemplateHome), "template identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, ok := schema.ParseTemplateID(*templateName)
	if !ok {
		return fmt.Errorf("unknown template %q, expected one of %v", *templateName, schema.KnownTemplates())
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	session, err := editor.New(s).NewPage(id)
	if err != nil {
		return err
	}

	if _, err := tui.New().Run(ctx, session); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", session.Page().ID)
	return nil
}

func runEdit(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.String("id", "", "page id")
	slug := fs.String("slug", "", "page slug")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	pageID := *id
	if pageID == "" {
		if *slug == "" {
			return errors.New("either -id or -slug is required")
		}
		p, err := s.GetBySlug(ctx, *slug)
		if err != nil {
			return err
		}
		pageID = p.ID
	}

	session, err := editor.New(s).Open(ctx, pageID)
	if err != nil {
		return err
	}

	if _, err := tui.New().Run(ctx, session); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", session.Page().ID)
	return nil
}

func runRender(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	slug := fs.String("slug", "", "page slug")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return errors.New("-slug is required")
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	p, err := s.GetBySlug(ctx, *slug)
	if err != nil {
		return err
	}

	registry := render.NewRegistry()
	if err := site.Register(registry); err != nil {
		return err
	}

	options := []render.Option{render.WithRegistry(registry)}
	if cfg.Theme.Dir != "" {
		manifest, err := render.LoadManifest(filepath.Join(cfg.Theme.Dir, cfg.Theme.Name+".yaml"))
		if err != nil {
			return err
		}
		options = append(options, render.WithThemeSelector(
			render.StaticSelector{Manifest: manifest},
			cfg.Theme.Name,
			cfg.Theme.Variant,
		))
	}

	values, err := content.Decode(schema.Builtin(), p.TemplateName, p.Content)
	if err != nil {
		return err
	}

	presentation, err := render.NewDispatcher(options...).Render(ctx, *p, values)
	if err != nil {
		return err
	}
	if presentation.Fallback {
		klog.Warningf("template %q has no presentation, rendered the fallback", p.TemplateName)
	}

	if *output != "" {
		return os.WriteFile(*output, presentation.Body, 0o644)
	}
	_, err = os.Stdout.Write(presentation.Body)
	return err
}

func runDelete(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "page id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	return s.Delete(ctx, *id)
}

func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	templateName := fs.String("template", string(schema.TemplateHome), "template identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, ok := schema.ParseTemplateID(*templateName)
	if !ok {
		return fmt.Errorf("unknown template %q, expected one of %v", *templateName, schema.KnownTemplates())
	}

	sch, err := schema.Builtin().SchemaFor(id)
	if err != nil {
		return err
	}
	out, err := schema.OpenAPISchemaJSON(sch)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
