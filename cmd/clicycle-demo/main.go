// clicycle-demo renders every clicycle component once, as a visual
// smoke test for themes and spacing.
//
// Usage:
//
//	clicycle-demo                     # default theme
//	clicycle-demo -theme mono         # monochrome/ASCII theme
//	clicycle-demo -theme-file my.yaml # YAML theme overrides
//	clicycle-demo -interactive        # include prompt components
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Living-Content/clicycle"
	"github.com/Living-Content/clicycle/pkg/theme"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("clicycle-demo", flag.ContinueOnError)
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	themeFile := fs.String("theme-file", "", "YAML theme override file")
	interactive := fs.Bool("interactive", false, "Include prompt components")
	debug := fs.Bool("debug", false, "Print spacing decisions to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	th, err := resolveTheme(*themeFlag, *themeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "clicycle-demo:", err)
		return 1
	}

	cli := clicycle.New(clicycle.Config{
		AppName: "clicycle",
		Theme:   th,
		Debug:   *debug,
	})

	demo(cli)
	if *interactive {
		if err := demoPrompts(cli); err != nil {
			fmt.Fprintln(os.Stderr, "clicycle-demo:", err)
			return 1
		}
	}
	return 0
}

func resolveTheme(name, file string) (*theme.Theme, error) {
	if file != "" {
		return theme.LoadFile(file)
	}
	switch name {
	case "mono":
		return theme.Monochrome(), nil
	case "default":
		return theme.Default(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

func demo(cli *clicycle.Clicycle) {
	cli.Header("Component Showcase", "every renderable, once", "")

	cli.Section("messages")
	cli.Info("informational message")
	cli.Success("operation completed")
	cli.Warning("disk space is low")
	cli.Error("connection refused")
	cli.Debug("cache hit ratio 0.92")

	cli.Section("lists and groups")
	cli.ListItem("first item")
	cli.ListItem("second item")
	cli.Block(func() {
		cli.Info("grouped line one")
		cli.Info("grouped line two")
	})

	cli.Section("data")
	cli.Table([]clicycle.Record{
		{{Name: "Name", Value: "Alice"}, {Name: "Age", Value: 30}},
		{{Name: "Name", Value: "Bob"}, {Name: "Age", Value: 25}},
	}, "Users")

	cli.Summary([]clicycle.Pair{
		{Label: "Processed", Value: 128},
		{Label: "Elapsed", Value: "2.4s"},
	})

	_ = cli.JSON(map[string]any{"status": "ok", "count": 2}, "response")

	cli.Code(clicycle.CodeBlock{
		Source:      "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}",
		Language:    "go",
		Title:       "hello.go",
		LineNumbers: true,
	})

	cli.Section("progress")
	_ = cli.WithSpinner("resolving dependencies", func() error {
		time.Sleep(600 * time.Millisecond)
		return nil
	})

	_ = cli.WithProgress("downloading layers", func(p *clicycle.ProgressTask) error {
		for i := 0; i <= 10; i++ {
			p.Update(float64(i)/10, fmt.Sprintf("layer %d/10", i))
			time.Sleep(60 * time.Millisecond)
		}
		return nil
	})

	_ = cli.WithMultiProgress("deploying services", func(mp *clicycle.MultiProgress) error {
		web := mp.AddTask("web servers", 4, "web")
		db := mp.AddTask("databases", 2, "db ")
		for web.Current < web.Total || db.Current < db.Total {
			mp.Advance(web, 1)
			mp.Advance(db, 1)
			time.Sleep(150 * time.Millisecond)
		}
		return nil
	})

	cli.Divider()
	cli.Suggestions("Next steps", []string{
		"clicycle-demo -theme mono",
		"clicycle-demo -interactive",
	})
}

func demoPrompts(cli *clicycle.Clicycle) error {
	name, err := cli.Prompt("What is your name?", clicycle.PromptOptions{
		Placeholder: "anonymous",
		Default:     "anonymous",
	})
	if err != nil {
		return err
	}
	cli.Success("hello, " + name)

	fruit, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "banana")
	if err != nil {
		if errors.Is(err, clicycle.ErrInvalidSelection) {
			cli.Error(err.Error())
			return nil
		}
		return err
	}
	cli.Info("picked " + fruit)

	env, err := cli.InteractiveSelect("Deploy where?", []clicycle.SelectOption{
		{Label: "staging"},
		{Label: "production", Value: "prod"},
	}, 0)
	if err != nil {
		return err
	}

	ok, err := cli.Confirm("Deploy to "+env+"?", false)
	if err != nil {
		return err
	}
	if ok {
		cli.Success("deployed to " + env)
	} else {
		cli.Warning("deploy skipped")
	}
	return nil
}
