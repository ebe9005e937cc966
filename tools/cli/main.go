package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	pipeline "github.com/epitrack/spreader-detector/internal/app"
	f "github.com/epitrack/spreader-detector/pkg/functional"
	"github.com/epitrack/spreader-detector/pkg/report"
	"github.com/epitrack/spreader-detector/pkg/roster"
)

func newPipeline(peoplePath, meetingsPath, configPath string) (*pipeline.App, error) {
	if meetingsPath == "-" && !isStdinPiped() {
		return nil, fmt.Errorf("meetings path %q requires piped stdin", meetingsPath)
	}
	return pipeline.New(pipeline.Config{
		PeopleFile:    peoplePath,
		MeetingsFile:  meetingsPath,
		ConfigPath:    configPath,
		InfoBuffer:    io.Discard,
		WarningBuffer: os.Stderr,
		Stdin:         os.Stdin,
	})
}

func main() {
	var configPath string
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to a spreader.toml config file",
		Destination: &configPath,
	}

	cliApp := &cli.App{
		Name:        "spreader-cli",
		Usage:       "CLI tool for working with spreader detector inputs",
		Description: "",
		Commands: []*cli.Command{
			{
				Name:        "report",
				Aliases:     []string{"r"},
				Usage:       "Run the analysis and print the report",
				UsageText:   "spreader-cli report [options] <people-file> <meetings-file>",
				Description: "Run the full propagation pipeline and print the report. A meetings path of - reads the meeting stream from stdin.",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "default",
						Usage:   "Output format.  Allowed values are: default and json",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return fmt.Errorf("people and meetings files are required")
					}
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					return runReport(os.Stdout, cCtx.Args().Get(0), cCtx.Args().Get(1), configPath, format)
				},
			},
			{
				Name:        "check",
				Aliases:     []string{"k"},
				Usage:       "Validate input files without writing a report",
				UsageText:   "spreader-cli check [options] <people-file> <meetings-file>",
				Description: "Parse both input files, reject duplicate roster ids, and verify every meeting participant appears in the roster.",
				Flags:       []cli.Flag{configFlag},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return fmt.Errorf("people and meetings files are required")
					}
					return runCheck(os.Stdout, cCtx.Args().Get(0), cCtx.Args().Get(1), configPath)
				},
			},
			{
				Name:        "stats",
				Aliases:     []string{"s"},
				Usage:       "Print roster statistics",
				UsageText:   "spreader-cli stats [options] <people-file> [meetings-file]",
				Description: "Print headcount and at-risk count for the roster. With a meetings file, also propagate and print per-band counts.",
				Flags:       []cli.Flag{configFlag},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() < 1 {
						return fmt.Errorf("people file is required")
					}
					return runStats(os.Stdout, cCtx.Args().Get(0), cCtx.Args().Get(1), configPath)
				},
			},
		},
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runReport(w io.Writer, peoplePath, meetingsPath, configPath string, format OutputFormat) error {
	a, err := newPipeline(peoplePath, meetingsPath, configPath)
	if err != nil {
		return err
	}
	if err := a.LoadInputs(); err != nil {
		return err
	}
	if err := a.Propagate(); err != nil {
		return err
	}
	return writeLines(w, a.BuildReport(), format)
}

func runCheck(w io.Writer, peoplePath, meetingsPath, configPath string) error {
	a, err := newPipeline(peoplePath, meetingsPath, configPath)
	if err != nil {
		return err
	}
	if err := a.LoadInputs(); err != nil {
		return err
	}

	ids := f.Map(a.People(), func(p roster.Person) uint64 { return p.ID })
	if unique := f.RemoveDuplicates(ids); len(unique) != len(a.People()) {
		return fmt.Errorf("roster contains duplicate ids")
	}

	// Propagation resolves every participant, so a dry run surfaces any
	// id missing from the roster.
	if err := a.Propagate(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "OK: %d people, %d meetings\n", len(a.People()), a.MeetingCount())
	return err
}

func runStats(w io.Writer, peoplePath, meetingsPath, configPath string) error {
	withMeetings := meetingsPath != ""
	if !withMeetings {
		meetingsPath = os.DevNull
	}
	a, err := newPipeline(peoplePath, meetingsPath, configPath)
	if err != nil {
		return err
	}
	if err := a.LoadInputs(); err != nil {
		return err
	}
	if err := a.Propagate(); err != nil {
		return err
	}

	fmt.Fprintf(w, "People: %d\n", len(a.People()))
	fmt.Fprintf(w, "At risk (age >= %g): %d\n", *a.Conf.RiskAge, len(a.AtRisk()))
	if !withMeetings {
		return nil
	}

	thresholds := a.Conf.Thresholds()
	counts := make(map[report.Band]int)
	for _, p := range a.People() {
		counts[thresholds.Classify(p.Probability)]++
	}
	fmt.Fprintf(w, "Meetings: %d\n", a.MeetingCount())
	for _, band := range []report.Band{report.Hospitalization, report.Quarantine, report.NoRisk} {
		fmt.Fprintf(w, "%s: %d\n", band, counts[band])
	}
	return nil
}
