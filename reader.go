package converse

// LineReader is the line-editing engine a Session drives. The session
// renders prompts to concrete strings; the reader displays them, collects
// input, and reports end of input as io.EOF (possibly wrapped).
//
// Implementations in this module: TerminalReader (raw-mode terminal with
// editing and Tab completion), PlainReader (pipes and files), ScriptReader
// (scripted input for tests), and teareader.Reader (Bubble Tea hosts).
type LineReader interface {
	// ReadLine displays prompt and reads one line, without the trailing
	// newline.
	ReadLine(prompt string) (string, error)

	// ReadChar displays prompt and reads a single character. Enter yields
	// '\n'.
	ReadChar(prompt string) (rune, error)

	// ReadPassword displays prompt and reads a line without echoing it.
	// A non-zero mask echoes one mask character per typed rune instead.
	ReadPassword(prompt string, mask rune) (string, error)

	// SetCompletion installs the completion function consulted when the
	// user requests completion. The session keeps this pointed at the top
	// of its completion stack.
	SetCompletion(fn CompletionFunc)
}
