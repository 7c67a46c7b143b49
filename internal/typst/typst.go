package typst

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/tirtatarum/spk/internal/config"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
)

type Compiler interface {
	Compile(opts CompileOpts) (string, error)
	CompileToBytes(opts CompileOpts) ([]byte, error)
	CompileTemplate(templateName string, data []byte, opts ...CompileOptsBuilder) ([]byte, error)
}

// compiler shells out to the typst binary to render documents.
type compiler struct {
	logger *logger.Logger
	// Path to the typst binary
	binaryPath string
	// Directory where fonts are stored
	fontDir string
	// Directory where templates are stored
	templateDir string
	// Directory for output files
	outputDir string
}

// CompileOpts contains options for compiling a Typst document
type CompileOpts struct {
	// Input file path
	InputFile string
	// Output file name (optional, if not provided a temp file will be created)
	OutputFile string
	// Font paths to include
	FontDirs []string
	// Additional command-line arguments
	ExtraArgs []string
}

type CompileOptsBuilder func(c *CompileOpts)

func WithInputFile(inputFile string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.InputFile = inputFile
	}
}

func WithOutputFile(outputFile string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.OutputFile = outputFile
	}
}

func WithFontDirs(fontDirs ...string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.FontDirs = fontDirs
	}
}

func WithExtraArgs(extraArgs ...string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.ExtraArgs = extraArgs
	}
}

// NewCompiler creates a Typst compiler from the pdf configuration.
func NewCompiler(cfg *config.Configuration, logger *logger.Logger) Compiler {
	outputDir := cfg.Pdf.OutputDir
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	return &compiler{
		logger:      logger,
		binaryPath:  cfg.Pdf.BinaryPath,
		fontDir:     cfg.Pdf.FontDir,
		templateDir: cfg.Pdf.TemplateDir,
		outputDir:   outputDir,
	}
}

// Compile compiles a Typst document to PDF and returns the output path.
func (c *compiler) Compile(opts CompileOpts) (string, error) {
	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = fmt.Sprintf("typst-%d.pdf", time.Now().UnixMilli())
	}
	outputPath := filepath.Join(c.outputDir, outputFile)

	// Build font directories argument
	var fontDirs []string
	if c.fontDir != "" {
		fontDirs = append(fontDirs, c.fontDir)
	}
	fontDirs = append(fontDirs, opts.FontDirs...)

	args := []string{"compile", "--root", "/"}
	for _, dir := range fontDirs {
		args = append(args, "--font-path", dir)
	}
	args = append(args, opts.ExtraArgs...)
	args = append(args, opts.InputFile, outputPath)

	binaryPath, err := exec.LookPath(c.binaryPath)
	if err != nil {
		return "", ierr.WithError(err).
			WithMessage("typst binary not found").
			WithHint("The PDF renderer is unavailable. The generated work orders are kept; retry after fixing the typst installation.").
			Mark(ierr.ErrPresentation)
	}

	cmd := exec.Command(binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", ierr.WithError(err).
			WithMessage("typst compilation failed").
			WithHint("Failed to render the PDF. The generated work orders are kept; retry the export.").
			WithReportableDetails(map[string]any{
				"stderr": stderr.String(),
			}).
			Mark(ierr.ErrPresentation)
	}

	return outputPath, nil
}

// CompileToBytes compiles a Typst document and returns the PDF content.
func (c *compiler) CompileToBytes(opts CompileOpts) ([]byte, error) {
	pdfPath, err := c.Compile(opts)
	if err != nil {
		return nil, err
	}
	defer os.Remove(pdfPath)

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to read compiled PDF").
			WithHint("Failed to read the rendered PDF. Retry the export.").
			Mark(ierr.ErrPresentation)
	}
	return pdf, nil
}

// CompileTemplate compiles a Typst template with the provided data. The data
// must be a JSON document compatible with the template; it is handed to
// typst through sys.inputs:
//
//	#let doc = json(sys.inputs.path)
func (c *compiler) CompileTemplate(
	templateName string,
	data []byte,
	opts ...CompileOptsBuilder,
) ([]byte, error) {
	templatePath := filepath.Join(c.templateDir, templateName)
	if _, err := os.Stat(templatePath); os.IsNotExist(err) {
		return nil, ierr.WithError(err).
			WithMessagef("template not found: %s", templatePath).
			WithHint("The document template is missing. Retry after restoring it.").
			Mark(ierr.ErrPresentation)
	}

	jsonFile, err := os.Create(filepath.Join(c.outputDir, fmt.Sprintf("typst-%d.json", time.Now().UnixMilli())))
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create temporary json file").
			WithHint("Failed to stage document data. Retry the export.").
			Mark(ierr.ErrPresentation)
	}

	if _, err := jsonFile.Write(data); err != nil {
		jsonFile.Close()
		return nil, ierr.WithError(err).
			WithMessage("failed to write data to json file").
			WithHint("Failed to stage document data. Retry the export.").
			Mark(ierr.ErrPresentation)
	}
	jsonFile.Close()

	compileOpts := CompileOpts{
		InputFile: templatePath,
		ExtraArgs: []string{"--input", fmt.Sprintf("path=%s", jsonFile.Name())},
	}

	defer os.Remove(jsonFile.Name())

	for _, opt := range opts {
		opt(&compileOpts)
	}

	return c.CompileToBytes(compileOpts)
}
