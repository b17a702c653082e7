package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"tabhash/internal/fingerprint"
)

// isInteractive reports whether the reader is a terminal, so prompts
// only appear for a human operator.
func isInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptMode runs the interactive mode menu. The answer goes through
// the same parser as the --mode flag, so names work as well as digits.
func promptMode(in *bufio.Reader, out io.Writer) (fingerprint.Mode, error) {
	fmt.Fprintln(out, "Select fingerprinting mode:")
	fmt.Fprintln(out, "1. Order-Dependent")
	fmt.Fprintln(out, "2. Order-Independent")
	fmt.Fprint(out, "Enter your choice (1 or 2): ")

	answer, err := readLine(in)
	if err != nil {
		return 0, fmt.Errorf("read mode selection: %w", err)
	}
	mode, err := fingerprint.ParseMode(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid choice %q: enter 1 or 2", strings.TrimSpace(answer))
	}
	return mode, nil
}

// promptPath asks for the dataset location.
func promptPath(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the file path of the dataset: ")
	answer, err := readLine(in)
	if err != nil {
		return "", fmt.Errorf("read dataset path: %w", err)
	}
	path := strings.TrimSpace(answer)
	if path == "" {
		return "", errors.New("dataset path is required")
	}
	return path, nil
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
