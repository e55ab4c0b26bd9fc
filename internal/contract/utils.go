package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Verdict label constants for indicator percentages.
const (
	StrongValue   = "Strong"   // Strong signal
	ElevatedValue = "Elevated" // Elevated signal
	ModerateValue = "Moderate" // Moderate signal
	WeakValue     = "Weak"     // Weak signal
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgRed, color.Bold)     // strongColor represents standard danger.
	ElevatedColor = color.New(color.FgMagenta, color.Bold) // elevatedColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents standard caution, not bold.
	WeakColor     = color.New(color.FgCyan)                // weakColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text label grading an indicator percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(pct float64) string {
	switch {
	case pct >= 75:
		return StrongValue
	case pct >= 50:
		return ElevatedValue
	case pct >= 25:
		return ModerateValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(pct float64) string {
	text := GetPlainLabel(pct)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case ElevatedValue:
		return ElevatedColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for run storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ai_indicator_runs.db"
	}
	return filepath.Join(homeDir, ".ai_indicator_runs.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for "..." plus at least one rune.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
