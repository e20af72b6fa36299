package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

func repl(s *session) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Printf("Sound Design Studio: %q, %d layer(s). Type help for commands.\n",
		s.doc.Name, len(s.doc.Layers))

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if err := eval(s, line); err != nil {
			fmt.Println(err)
		}
	}
}

func eval(s *session, input string) error {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return nil
	}
	name, args := parts[0], parts[1:]

	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if len(args) < cmd.minArgs {
			return fmt.Errorf("%s: not enough arguments: want at least %d, got %d",
				cmd.name, cmd.minArgs, len(args))
		}
		if err := cmd.run(s, args); err != nil {
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", name)
}
