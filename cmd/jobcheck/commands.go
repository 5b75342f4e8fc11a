package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hirekit/pkg/sanitizer"
	"github.com/dmitrymomot/hirekit/svc/jobposting"
)

var errRejected = errors.New("job posting rejected")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobcheck",
		Short:         "Validate and sanitize job posting payloads offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newSanitizeCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.json|file.yaml|->",
		Short: "Run the validation pipeline on a payload and print the normalized record",
		Long: "Reads a job posting payload from a JSON or YAML file (\"-\" reads JSON from stdin),\n" +
			"runs it through the validation pipeline and prints the normalized record.\n" +
			"On rejection the failing field and message are printed and the exit code is 1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readPayload(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			res := jobposting.ValidateJobPosting(input)
			if !res.Valid {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", res.Err.Field, res.Err.Message)
				return errRejected
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res.Value)
		},
	}
}

func newSanitizeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Sanitize HTML read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			out := sanitizer.SanitizeHTML(string(raw))
			if plain {
				out = sanitizer.StripHTML(string(raw))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "strip all markup and decode entities")
	return cmd
}

func readPayload(stdin io.Reader, path string) (any, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var input any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &input); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&input); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	return input, nil
}
