package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

func promptWithRetry(reader *bufio.Reader, prompt string, validator func(string) (string, error)) (string, error) {
	for {
		fmt.Print(labelStyle.Render(prompt))
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		result, err := validator(input)
		if err == nil {
			return result, nil
		}

		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
	}
}

func promptRequired(reader *bufio.Reader, prompt string) (string, error) {
	return promptWithRetry(reader, prompt, func(input string) (string, error) {
		if input == "" {
			return "", fmt.Errorf("this field is required")
		}
		return input, nil
	})
}

func promptOptional(reader *bufio.Reader, prompt string, defaultValue string) (string, error) {
	return promptWithRetry(reader, prompt, func(input string) (string, error) {
		if input == "" {
			return defaultValue, nil
		}
		return input, nil
	})
}

func promptYesNo(reader *bufio.Reader, prompt string, defaultYes bool) (bool, error) {
	result, err := promptWithRetry(reader, prompt, func(input string) (string, error) {
		lower := strings.ToLower(input)
		switch lower {
		case "y", "yes", "n", "no", "":
			return lower, nil
		}
		return "", fmt.Errorf("enter y/yes/n/no or press Enter for the default")
	})
	if err != nil {
		return false, err
	}

	if result == "" {
		return defaultYes, nil
	}
	return result == "y" || result == "yes", nil
}

// promptPassword reads without echo when stdin is a terminal, falling back
// to a plain read when it is not (pipes, tests).
func promptPassword(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(labelStyle.Render(prompt))

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// promptSelection loops until the user picks a valid 1-based index.
func promptSelection(reader *bufio.Reader, prompt string, count int, defaultChoice string) (int, error) {
	result, err := promptWithRetry(reader, prompt, func(input string) (string, error) {
		if input == "" {
			input = defaultChoice
		}
		index, err := strconv.Atoi(input)
		if err != nil {
			return "", fmt.Errorf("please enter a number")
		}
		if index < 1 || index > count {
			return "", fmt.Errorf("invalid selection, please try again")
		}
		return input, nil
	})
	if err != nil {
		return 0, err
	}

	index, _ := strconv.Atoi(result)
	return index - 1, nil
}

// readMultiline collects pasted lines until two consecutive blank lines.
func readMultiline(reader *bufio.Reader) ([]string, error) {
	var lines []string
	emptyCount := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			emptyCount++
			if emptyCount >= 2 {
				break
			}
		} else {
			emptyCount = 0
			lines = append(lines, line)
		}

		if err != nil {
			break
		}
	}

	return lines, nil
}
