package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fea-tools/mecheck/internal/docs"
	"github.com/fea-tools/mecheck/internal/mec"
	"github.com/fea-tools/mecheck/internal/model"
	"github.com/fea-tools/mecheck/internal/ux"
	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func main() {
	app := &cli.Command{
		Name:        "mecheck",
		Usage:       "Inspect FEANX MEC analysis-setup files",
		Description: "Run 'mecheck docs' for documentation on the MEC format, record families, and diagnostics.",
		Commands: []*cli.Command{
			checkCmd(),
			exportCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func parseFile(path string) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := mec.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse a MEC file and print the model summary and report",
		ArgsUsage: "<file.mec>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict", Usage: "Exit non-zero when the report contains errors or warnings"},
			&cli.BoolFlag{Name: "report-only", Usage: "Print only the report, not the model summary"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			m, err := parseFile(path)
			if err != nil {
				return err
			}
			if !cmd.Bool("report-only") {
				ux.RenderModel(m)
			}
			ux.RenderReport(m.Report)
			if cmd.Bool("strict") && (m.Report.ErrorCount() > 0 || m.Report.WarningCount() > 0) {
				return fmt.Errorf("%d error(s), %d warning(s)", m.Report.ErrorCount(), m.Report.WarningCount())
			}
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Parse a MEC file and write the model as YAML",
		ArgsUsage: "<file.mec>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output path (default stdout)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			m, err := parseFile(path)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(m)
			if err != nil {
				return fmt.Errorf("encoding model: %w", err)
			}
			if out := cmd.String("out"); out != "" {
				return os.WriteFile(out, data, 0644)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-10s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'mecheck docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
