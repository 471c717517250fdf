package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// EnvUser holds the id of the logged-in user for the current shell session
const EnvUser = "AVANCE_USER"

// DateLayout is the accepted format for start and end dates
const DateLayout = time.DateOnly

// ErrNoCurrentUser indicates neither --user nor AVANCE_USER is set
var ErrNoCurrentUser = errors.New("no current user")

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietUsage string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietUsage)
}

// NewFormatter builds an OutputFormatter from the --json and --quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddUserFlag registers --user, which overrides AVANCE_USER
func AddUserFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("user", 0, "User ID (defaults to $"+EnvUser+")")
}

// CurrentUserID resolves the acting user from --user, then AVANCE_USER
func CurrentUserID(cmd *cobra.Command) (int64, error) {
	if flag := cmd.Flags().Lookup("user"); flag != nil && flag.Changed {
		return cmd.Flags().GetInt64("user")
	}

	value := os.Getenv(EnvUser)
	if value == "" {
		return 0, ErrNoCurrentUser
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", EnvUser, value)
	}
	return id, nil
}

// ValidateDate checks that value is a calendar date in YYYY-MM-DD form.
// Dates are stored as text, so this format keeps them sortable.
func ValidateDate(flag, value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("--%s must be a date in YYYY-MM-DD format, got %q", flag, value)
	}
	return nil
}

// ValidateDateRange checks both dates and that end is not before start
func ValidateDateRange(start, end string) error {
	if err := ValidateDate("start", start); err != nil {
		return err
	}
	if err := ValidateDate("end", end); err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}

// Confirm asks a yes/no question on the command's input
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// ReadPassword returns --password, or the first line of stdin when
// --password-stdin is set
func ReadPassword(cmd *cobra.Command) (string, error) {
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")
	if !fromStdin {
		return cmd.Flags().GetString("password")
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AddPasswordFlags registers --password and --password-stdin
func AddPasswordFlags(cmd *cobra.Command) {
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	cmd.MarkFlagsOneRequired("password", "password-stdin")
}
