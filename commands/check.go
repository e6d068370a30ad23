package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/password-meter/mimetype"
	"github.com/pivotal-cf/password-meter/scanners"
	"github.com/pivotal-cf/password-meter/scanners/filescanner"
	"github.com/pivotal-cf/password-meter/strength"
)

const sniffLen = 512

type CheckCommand struct {
	File    string `short:"f" long:"file" description:"check passwords from a file, one per line" value-name:"FILE"`
	Verbose bool   `short:"v" long:"verbose" description:"enables debug logging"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD" description:"the password to check"`
	} `positional-args:"yes"`
}

func (command *CheckCommand) Execute(args []string) error {
	logger := lager.NewLogger("check")

	if command.Verbose {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	evaluator := strength.NewEvaluator()

	switch {
	case command.File != "":
		return command.checkFile(logger, evaluator)
	case command.Args.Password != "":
		writeReport(os.Stdout, evaluator.Evaluate(command.Args.Password))
		return nil
	default:
		return command.checkInteractive(logger, evaluator)
	}
}

func (command *CheckCommand) checkFile(logger lager.Logger, evaluator *strength.Evaluator) error {
	logger = logger.Session("check-file", lager.Data{"file": command.File})
	logger.Debug("starting")
	defer logger.Debug("done")

	file, err := os.Open(command.File)
	if err != nil {
		return err
	}
	defer file.Close()

	br := bufio.NewReader(file)
	prefix, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return err
	}
	if !mimetype.IsPlainText(prefix) {
		return fmt.Errorf("refusing to scan %s: not a plain text file", command.File)
	}

	var result error

	scanner := filescanner.New(br, command.File)
	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		if err := command.handleLine(logger, line, evaluator.Evaluate(line.Content)); err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

func (command *CheckCommand) handleLine(logger lager.Logger, line *scanners.Line, result strength.Result) error {
	fmt.Printf("%s:%d\n", line.Path, line.LineNumber)
	writeReport(os.Stdout, result)
	fmt.Println(separator)

	logger.Debug("checked", lager.Data{"line": line.LineNumber, "label": result.Label.String()})

	return nil
}

func (command *CheckCommand) checkInteractive(logger lager.Logger, evaluator *strength.Evaluator) error {
	logger = logger.Session("interactive")
	logger.Debug("starting")
	defer logger.Debug("done")

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	fmt.Println("Password Strength Checker")
	fmt.Println("Enter passwords to check (type 'quit' to exit)")

	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter password: ")
		if !stdin.Scan() {
			break
		}

		password := strings.TrimSpace(stdin.Text())
		if strings.ToLower(password) == "quit" {
			break
		}
		if password == "" {
			continue
		}

		writeReport(os.Stdout, evaluator.Evaluate(password))
	}

	return stdin.Err()
}
