package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword and isTerminal are replaced in tests to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

func newHashPasswordCmd() *cobra.Command {
	var (
		memoryKiB   uint32
		iterations  uint32
		parallelism uint8
	)

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the argon2id digest of a password read from the terminal or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			hasher := auth.NewArgon2Hasher(config.AuthConfig{
				Argon2MemoryKiB:   memoryKiB,
				Argon2Iterations:  iterations,
				Argon2Parallelism: parallelism,
			})
			digest, err := hasher.Hash(password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), digest)
			return err
		},
	}

	cmd.Flags().Uint32Var(&memoryKiB, "memory", 64*1024, "argon2 memory cost in KiB")
	cmd.Flags().Uint32Var(&iterations, "iterations", 3, "argon2 time cost")
	cmd.Flags().Uint8Var(&parallelism, "parallelism", 4, "argon2 parallelism")

	return cmd
}

// promptPassword reads a password without echo when in is a terminal and
// falls back to reading one line otherwise.
func promptPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(prompt, "Password: "); err != nil {
			return "", err
		}
		b, err := readPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return nonEmpty(string(b))
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no password given on stdin")
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return nonEmpty(strings.TrimRight(line, "\r\n"))
}

func nonEmpty(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}
