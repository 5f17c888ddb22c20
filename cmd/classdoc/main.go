// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

// classdoc renders markdown API documentation from a class reflection model.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/classdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/classdoc"
	_buildTime string
)

// cliOptions describes classdoc CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Render   renderCommand   `command:"render" description:"Render markdown documentation from a model file"`
	TOC      tocCommand      `command:"toc" description:"Render only the table of contents"`
	Example  exampleCommand  `command:"example" description:"Print a starter model file"`
}

// modelInputFlags groups model decoding flags.
type modelInputFlags struct {
	Format string `short:"F" long:"format" description:"Model format; guessed from file extension, YAML for stdin" choice:"yaml" choice:"json"`
}

// markdownRenderFlags groups markdown rendering flags. Empty values fall
// back to the config file, then to library defaults.
type markdownRenderFlags struct {
	ConfigPath   string `short:"c" long:"config" description:"Path to YAML or TOML render config"`
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"readme" choice:"reference"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title"`
	Trailer      string `long:"trailer" description:"Replace attribution line appended to the document"`
	NoTrailer    bool   `long:"no-trailer" description:"Omit attribution line"`
	Pretty       bool   `short:"p" long:"pretty" description:"Align markdown table columns"`
	HTML         bool   `long:"html" description:"Convert rendered markdown to HTML"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"readme" choice:"reference" default:"readme"`
}

// renderCommand converts a model file to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Model  string `positional-arg-name:"model" description:"Input model file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ModelFlags  modelInputFlags     `group:"Model Input"`
	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		command.Args.Model,
		command.ModelFlags.Format,
		command.RenderFlags,
		command.Args.Output,
	)
}

// tocCommand renders a table of contents.
type tocCommand struct {
	runner *cliRunner
	Args   struct {
		Model  string `positional-arg-name:"model" description:"Input model file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ModelFlags modelInputFlags `group:"Model Input"`
}

// Execute runs toc subcommand.
func (command *tocCommand) Execute(_ []string) error {
	return command.runner.runTOC(command.Args.Model, command.ModelFlags.Format, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// exampleCommand exports a starter model file.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output model file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format string `short:"F" long:"format" description:"Model format" choice:"yaml" choice:"json" default:"yaml"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Format, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      *log.Logger
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "classdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		logger:      newLogger(stderr, log.InfoLevel),
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender loads the model, renders markdown (or HTML) and writes the result.
func (runner *cliRunner) runRender(modelPath, format string, renderFlags markdownRenderFlags, outputPath string) error {
	var cfg fileConfig
	if renderFlags.ConfigPath != "" {
		loaded, err := loadConfig(renderFlags.ConfigPath)
		if err != nil {
			return err
		}

		runner.logger.Debug("loaded config", "path", renderFlags.ConfigPath)
		cfg = loaded
	}

	cfg = cfg.merge(renderFlags)
	renderOptions, err := cfg.renderOptions()
	if err != nil {
		return err
	}

	project, err := runner.readModel(modelPath, format)
	if err != nil {
		return fmt.Errorf("read model input: %w", err)
	}

	rendered, err := classdoc.Render(project, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	kind := "markdown"
	if cfg.HTML {
		rendered = classdoc.ToHTML(rendered)
		kind = "html"
	}

	return runner.writeOutput(kind, outputPath, rendered)
}

// runTOC loads the model and writes its table of contents.
func (runner *cliRunner) runTOC(modelPath, format, outputPath string) error {
	project, err := runner.readModel(modelPath, format)
	if err != nil {
		return fmt.Errorf("read model input: %w", err)
	}

	return runner.writeOutput("toc", outputPath, classdoc.RenderTOC(project))
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := classdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput("template", outputPath, tpl)
}

// runExample writes the starter model to stdout or file.
func (runner *cliRunner) runExample(format, outputPath string) error {
	data, err := classdoc.GenerateExample(format)
	if err != nil {
		return fmt.Errorf("generate example model: %w", err)
	}

	return runner.writeOutput("example", outputPath, string(data))
}

// readModel decodes the model from file path or stdin and reports classes
// that no listed namespace will render.
func (runner *cliRunner) readModel(path, format string) (*classdoc.Project, error) {
	project, source, err := runner.decodeModel(strings.TrimSpace(path), format)
	if err != nil {
		return nil, err
	}

	runner.logger.Debug("loaded model",
		"source", source,
		"namespaces", len(project.Namespaces),
		"classes", len(project.Classes),
	)

	for _, name := range project.Unassigned() {
		runner.logger.Warn("class outside listed namespaces is not rendered", "class", name)
	}

	return project, nil
}

// decodeModel returns decoded project and a source marker for logging.
func (runner *cliRunner) decodeModel(path, format string) (*classdoc.Project, string, error) {
	if path != "" {
		if format == "" {
			project, err := classdoc.LoadProject(path)
			return project, path, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", classdoc.ErrReadModelFile, err)
		}

		project, err := classdoc.DecodeProject(data, format)
		return project, path, err
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read model from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read model from stdin: empty input")
	}

	project, err := classdoc.DecodeProject(data, format)
	return project, "(stdin)", err
}

// writeOutput writes content to stdout or to outputPath.
func (runner *cliRunner) writeOutput(kind, outputPath, content string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	runner.logger.Info("wrote "+kind, "path", outputPath)
	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Template.runner = runner
	options.Render.runner = runner
	options.TOC.runner = runner
	options.Example.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		runner.logger.SetLevel(logLevel(options.Verbose))
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}

	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`readme` or `reference`"+`).
Use it as a starting point for a custom template file.
Templates call {{ toc .Tree 0 }} and {{ render .Namespaces .Classes }}.

Examples:
> $ %s template > readme.gotmpl
> $ %s template -t reference templates/reference.gotmpl
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render markdown documentation from a YAML or JSON class model.
Reads model from file argument or stdin; writes markdown to file argument or stdout.
Flags override values from --config.

Examples:
> $ %s render model.yaml > README.md
> $ cat model.json | %s render -F json --pretty -T "My API" > API.md
> $ %s render --html model.yaml api.html
`, programName, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print a starter model covering classes, traits, interfaces, exceptions,
methods, parameters and type hints. Edit it or use it to test templates.

Examples:
> $ %s example > model.yaml
> $ %s example -F json model.json
`, programName, programName)),
		"toc": strings.TrimSpace(fmt.Sprintf(`
Render only the numbered table of contents for a class model.

Examples:
> $ %s toc model.yaml
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
	return err
}
