package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/epitrack/spreader-detector/internal/config"
	"github.com/epitrack/spreader-detector/pkg/contagion"
	f "github.com/epitrack/spreader-detector/pkg/functional"
	"github.com/epitrack/spreader-detector/pkg/report"
	"github.com/epitrack/spreader-detector/pkg/roster"
)

// ErrInput covers everything wrong with the two input files: unreadable
// paths, malformed rows, and meeting participants missing from the roster.
var ErrInput = errors.New("input error")

// ErrOutput covers failures writing the analysis report.
var ErrOutput = errors.New("output error")

// Config holds the pipeline configuration
type Config struct {
	PeopleFile    string
	MeetingsFile  string
	OutputFile    string // overrides the config file's output_file when set
	ConfigPath    string
	Verbose       bool
	InfoBuffer    io.Writer
	WarningBuffer io.Writer
	Stdin         io.Reader // consumed when MeetingsFile is "-"
}

// App owns the record store from creation through reporting. The pipeline
// is strictly sequential: load -> sort by id -> propagate -> sort by
// probability -> report.
type App struct {
	Conf   *config.Config
	config *Config
	people []roster.Person
	stream contagion.Stream
}

// New creates a new App instance with the given configuration
func New(cfg Config) (*App, error) {
	conf, err := config.ReadConfig(cfg.ConfigPath)
	if err != nil {
		if cfg.ConfigPath != "" {
			return nil, fmt.Errorf("reading config %s: %w", cfg.ConfigPath, err)
		}
		fmt.Fprintf(cfg.WarningBuffer, "Error reading %s - using default config\n", config.DefaultFileName)
	}
	return &App{Conf: conf, config: &cfg}, nil
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
	}
}

// People exposes the record store, in whatever order the last pipeline
// step left it.
func (a *App) People() []roster.Person {
	return a.people
}

// MeetingCount reports how many meeting rows were loaded.
func (a *App) MeetingCount() int {
	return len(a.stream.Meetings)
}

// AtRisk returns the people at or above the configured risk age.
func (a *App) AtRisk() []roster.Person {
	riskAge := *a.Conf.RiskAge
	return f.Filtered(a.people, func(p roster.Person) bool {
		return p.Age >= riskAge
	})
}

// LoadInputs parses both input files and sorts the store by id, leaving
// the App ready to propagate.
func (a *App) LoadInputs() error {
	peopleFile, err := os.Open(a.config.PeopleFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInput, err)
	}
	people, err := roster.Read(peopleFile)
	peopleFile.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInput, a.config.PeopleFile, err)
	}
	a.people = people
	a.printDebug("Loaded %d people from %s\n", len(people), a.config.PeopleFile)

	roster.Sort(a.people, roster.ByID)

	var meetingsReader io.Reader
	if a.config.MeetingsFile == "-" {
		meetingsReader = a.config.Stdin
	} else {
		meetingsFile, err := os.Open(a.config.MeetingsFile)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInput, err)
		}
		defer meetingsFile.Close()
		meetingsReader = meetingsFile
	}
	stream, err := contagion.Read(meetingsReader)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInput, a.config.MeetingsFile, err)
	}
	a.stream = stream
	a.printDebug("Loaded %d meetings from %s\n", len(stream.Meetings), a.config.MeetingsFile)
	return nil
}

// Propagate runs the infection model over the meeting stream.
func (a *App) Propagate() error {
	if err := contagion.Propagate(a.people, a.stream, a.Conf.Model()); err != nil {
		return fmt.Errorf("%w: %v", ErrInput, err)
	}
	return nil
}

// BuildReport sorts the store by probability and returns the report
// lines, highest risk first.
func (a *App) BuildReport() []report.Line {
	roster.Sort(a.people, roster.ByProbability)
	return report.Build(a.people, a.Conf.Thresholds(), a.Conf.ReportMessages())
}

// OutputFile is the report destination after flag and config resolution.
func (a *App) OutputFile() string {
	if a.config.OutputFile != "" {
		return a.config.OutputFile
	}
	return *a.Conf.OutputFile
}

// WriteReport writes the lines to the resolved output file.
func (a *App) WriteReport(lines []report.Line) error {
	outputFile, err := os.Create(a.OutputFile())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	defer outputFile.Close()
	if err := report.Write(outputFile, lines); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	a.printDebug("Wrote %d report lines to %s\n", len(lines), a.OutputFile())
	return nil
}

// Run executes the whole pipeline. Any failure aborts before the output
// file is touched, so a failed run never leaves a partial report.
func (a *App) Run() error {
	if err := a.LoadInputs(); err != nil {
		return err
	}
	if err := a.Propagate(); err != nil {
		return err
	}
	lines := a.BuildReport()
	return a.WriteReport(lines)
}
