package client

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/spf13/cobra"
)

func (a *App) newFiniteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finite <payload-file>",
		Short: "Validate values against an allow-list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateFile(cmd, args[0], finitePayload)
		},
	}
}

func (a *App) newNumericCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "numeric <payload-file>",
		Short: "Validate values against a numeric constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateFile(cmd, args[0], numericPayload)
		},
	}
}

func (a *App) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <payload-file>",
		Short: "Validate a payload with the validator named by its validation_parser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateFile(cmd, args[0], models.DecodeSlotPayload)
		},
	}
}

func (a *App) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <payloads-file>",
		Short: "Validate a list of payloads concurrently",
		Long: `Validate a list of payloads concurrently. Each payload is dispatched on its
validation_parser. Results are printed in input order; the command fails when
any payload failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readPayloadFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			payloads, err := batchPayloads(data)
			if err != nil {
				return err
			}

			results, err := a.services.SlotValidationService.ValidateBatch(cmd.Context(), payloads)
			if err != nil {
				return err
			}
			if err = printJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d payloads failed", failed, len(results))
			}
			return nil
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())

			serverVersion, err := a.services.SlotValidationService.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("get server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

func (a *App) validateFile(cmd *cobra.Command, path string, decode func([]byte) (models.SlotPayload, error)) error {
	data, err := readPayloadFile(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	payload, err := decode(data)
	if err != nil {
		return err
	}

	result, err := a.services.SlotValidationService.Validate(cmd.Context(), payload)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
