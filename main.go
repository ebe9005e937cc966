package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/epitrack/spreader-detector/internal/app"
)

const usageError = "USAGE: spreader-detector [flags] <people-file> <meetings-file>\n"

const (
	inFileError  = "Error in input files.\n"
	outFileError = "Error in output file.\n"
	stdLibError  = "Standard library error.\n"
)

var (
	WarningBuffer = bytes.NewBuffer([]byte{})
	InfoBuffer    = bytes.NewBuffer([]byte{})
)

type Flags struct {
	Out     *string
	Config  *string
	Verbose *bool
}

var flags = &Flags{
	Out:     flag.String("out", "", "Output file path (overrides output_file from config)"),
	Config:  flag.String("config", "", "Path to a spreader.toml config file"),
	Verbose: flag.Bool("v", false, "Verbose output"),
}

func errorAndExit(format string, args ...interface{}) {
	_, err := WarningBuffer.WriteTo(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing warning buffer: %v\n", err)
	}
	if *flags.Verbose {
		_, err := InfoBuffer.WriteTo(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing info buffer: %v\n", err)
		}
	}
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(WarningBuffer, format, args...)
}

// failureMessage maps a pipeline error to the fixed stderr message the
// caller sees; the wrapped detail only surfaces in verbose mode.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrInput):
		return inFileError
	case errors.Is(err, app.ErrOutput):
		return outFileError
	default:
		return stdLibError
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		errorAndExit(usageError)
	}

	a, err := app.New(app.Config{
		PeopleFile:    flag.Arg(0),
		MeetingsFile:  flag.Arg(1),
		OutputFile:    *flags.Out,
		ConfigPath:    *flags.Config,
		Verbose:       *flags.Verbose,
		InfoBuffer:    InfoBuffer,
		WarningBuffer: WarningBuffer,
		Stdin:         os.Stdin,
	})
	if err != nil {
		printWarning("%v\n", err)
		errorAndExit(inFileError)
	}

	if err := a.Run(); err != nil {
		printWarning("%v\n", err)
		errorAndExit("%s", failureMessage(err))
	}

	if *flags.Verbose {
		_, _ = InfoBuffer.WriteTo(os.Stderr)
	}
	_, _ = WarningBuffer.WriteTo(os.Stderr)
}
