package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docstow/pkg/config"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List the contents of the Documents folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := newStore().List()
			if err != nil {
				return err
			}
			for _, entry := range entries {
				name := entry.Name()
				if entry.IsDir() {
					name += "/"
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists NAME",
		Short: "Check whether a file exists in the Documents folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), newStore().Exists(args[0]))
			return nil
		},
	}
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat NAME",
		Short: "Print the raw contents of a file in the Documents folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := newStore().Read(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write NAME [TEXT]",
		Short: "Write text to a file in the Documents folder",
		Long: `Write text to a named file in the Documents folder, replacing any
existing file atomically. With no TEXT argument the text is read from
standard input.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			return newStore().WriteText(text, args[0])
		},
	}
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME [JSON]",
		Short: "Save a JSON document in canonical form",
		Long: `Parse a JSON document (from the argument or standard input) and save
it to a named file in the Documents folder in canonical form:
pretty-printed, keys sorted, slashes unescaped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			var v interface{}
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return fmt.Errorf("invalid JSON: %w", err)
			}
			return newStore().Save(v, args[0])
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write the effective configuration to a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Generate(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path (default: the user config file)")
	return cmd
}

// textArg returns the trailing argument, or the whole of stdin when
// the argument is absent.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
