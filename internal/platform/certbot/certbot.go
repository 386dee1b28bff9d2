// Package certbot drives the interactive certificate issuance tool.
package certbot

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
)

// runInteractive executes a command wired to the process terminal. It is
// a factory variable so tests can intercept it.
var runInteractive = func(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// stdinIsTerminal is a factory variable for TTY detection.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Run invokes certbot's nginx installer. With a domain it requests a
// certificate for exactly that name; without one certbot prompts for
// everything itself, which requires a terminal. The call blocks until
// certbot finishes; it owns stdin and stdout for its whole duration.
func Run(ctx context.Context, domain string) error {
	if domain == "" && !stdinIsTerminal() {
		return fmt.Errorf("certbot needs a terminal when no domain is given")
	}

	args := []string{"--nginx"}
	if domain != "" {
		args = append(args, "-d", domain)
	}

	if err := runInteractive(ctx, "certbot", args...); err != nil {
		return fmt.Errorf("certbot: %w", err)
	}
	return nil
}

// Issuer adapts Run to an injectable issuer value.
type Issuer struct{}

// Issue requests a certificate for domain via certbot's nginx installer.
func (Issuer) Issue(ctx context.Context, domain string) error {
	return Run(ctx, domain)
}
