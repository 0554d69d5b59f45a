package main

import (
	"fmt"
	"io"
	"os"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps.Stdin)
	if err != nil {
		return err
	}

	status, err := deps.Service.ParsePage(html)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.source(), err)
	}

	return printJSON(deps.Stdout, status)
}

func (c *ParseCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		if stdin == nil {
			return "", fmt.Errorf("no input on stdin")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", c.File, err)
	}
	return string(data), nil
}

func (c *ParseCmd) source() string {
	if c.File == "" || c.File == "-" {
		return "stdin"
	}
	return c.File
}
