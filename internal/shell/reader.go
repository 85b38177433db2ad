package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineReader prompts for and returns one line of input. It returns io.EOF
// when input is exhausted or the user aborts.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// TerminalReader reads from an interactive terminal with line editing and
// in-session history.
type TerminalReader struct {
	state *liner.State
}

// NewTerminalReader puts the terminal in raw mode. Callers must Close it to
// restore the terminal.
func NewTerminalReader() *TerminalReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &TerminalReader{state: st}
}

// Prompt implements LineReader. Ctrl-C and Ctrl-D both end input.
func (r *TerminalReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal.
func (r *TerminalReader) Close() error {
	return r.state.Close()
}

// ScriptReader reads answers line by line from a non-interactive source
// such as a pipe or a test script. Prompts are echoed to out so transcripts
// read like a terminal session.
type ScriptReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// maxScriptLine bounds one line of scripted input.
const maxScriptLine = 1 << 20

// NewScriptReader reads lines from in and echoes prompts to out. A nil out
// discards prompts.
func NewScriptReader(in io.Reader, out io.Writer) *ScriptReader {
	if out == nil {
		out = io.Discard
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxScriptLine)
	return &ScriptReader{sc: sc, out: out}
}

// Prompt implements LineReader.
func (r *ScriptReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		fmt.Fprintln(r.out)
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSuffix(r.sc.Text(), "\r")
	fmt.Fprintln(r.out, line)
	return line, nil
}
