// Package repl implements an interactive read-eval-print loop for lispkit,
// built on chzyer/readline and fatih/color for line editing and colored
// output.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/korhonen/lispkit/pkg/lisp"
)

const (
	primaryPrompt      = "lispkit> "
	continuationPrompt = "     ... "
	historyFile        = "/tmp/lispkit_history"
)

// Run starts the REPL against env, reading from stdin and writing to
// stdout until the user quits or sends EOF. Each evaluated form is run
// against env directly, so definitions persist across inputs.
func Run(env *lisp.Environment) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          primaryPrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("repl: starting readline: %w", err)
	}
	defer rl.Close()

	promptColor := color.New(color.FgBlue, color.Bold)
	resultColor := color.New(color.FgGreen)
	errColor := color.New(color.FgRed)

	promptColor.Println("lispkit — a small Lisp. Ctrl-D or (quit) to exit.")

	for {
		input, err := readForm(rl)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				fmt.Println()
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" || trimmed == "(quit)" {
			return nil
		}

		result, err := lisp.EvaluateIn(input, env)
		if err != nil {
			errColor.Printf("error: %v\n", err)
			continue
		}
		resultColor.Printf("=> %s\n", result.String())
	}
}

// readForm reads lines from rl, tracking paren balance, until it has a
// complete top-level form or the user hits EOF/interrupt.
func readForm(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	first := true

	for {
		if first {
			rl.SetPrompt(primaryPrompt)
		} else {
			rl.SetPrompt(continuationPrompt)
		}
		first = false

		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
		depth += parenDelta(line)

		if depth <= 0 {
			return strings.Join(lines, "\n"), nil
		}
	}
}

// parenDelta returns the net change in paren depth contributed by line.
func parenDelta(line string) int {
	delta := 0
	for _, ch := range line {
		switch ch {
		case '(':
			delta++
		case ')':
			delta--
		}
	}
	return delta
}
