package semconv

// Compilation
const (
	// Unique ID of a single compile run. Every input file compiled by one command gets its own ID.
	CompileID = "compile_id"

	// Path of the compiled file, "-" for stdin.
	InputPath = "input_path"

	// Path the generated code is written to, "-" for stdout.
	OutputPath = "output_path"
)

// Pipeline
const (
	// Name of the pipeline stage: tokenize, parse, transform or generate.
	Stage = "stage"

	// Number of tokens produced by the lexer.
	TokenCount = "token_count"

	// Length of the generated output in bytes.
	OutputSize = "output_size"
)

// Inspection
const (
	// Output format of the tokens and ast commands: pretty, json or yaml.
	Format = "format"
)
