// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/models"
)

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List vaults; secrets stay encrypted",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var vaults []models.Vault
			err := a.withSpinner("loading vaults", func() (err error) {
				vaults, err = a.services.VaultService.List(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}

			if len(vaults) == 0 {
				fmt.Fprintln(a.out, "no vaults yet")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUPDATED")
			for _, v := range vaults {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.VaultID, v.Name, humanize.Time(v.UpdatedAt))
			}
			return tw.Flush()
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encrypt a new secret and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if strings.TrimSpace(name) == "" {
				if name, err = a.prompter.Line("Vault name: "); err != nil {
					return err
				}
			}

			if err = a.unlock(true); err != nil {
				return err
			}

			secret, err := a.prompter.Password("Secret: ")
			if err != nil {
				return err
			}

			var vault models.Vault
			err = a.withSpinner("encrypting and saving", func() (err error) {
				vault, err = a.services.VaultService.Create(cmd.Context(), name, secret)
				return err
			})
			if err != nil {
				return err
			}

			a.success("created vault %q (%s)", vault.Name, vault.VaultID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "vault name")
	return cmd
}

func (a *App) revealCommand() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "reveal <vault-id>",
		Short: "Decrypt a vault and print its secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.unlock(false); err != nil {
				return err
			}

			var plaintext string
			err := a.withSpinner("decrypting", func() (err error) {
				plaintext, err = a.services.VaultService.Reveal(cmd.Context(), args[0])
				return err
			})
			if err != nil {
				a.forgetWrongPassword(err)
				return err
			}

			if !toClipboard {
				fmt.Fprintln(a.out, plaintext)
				return nil
			}
			if err = a.clipboard.WriteAll(plaintext); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			a.success("secret copied to clipboard")
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy the secret to the clipboard instead of printing it")
	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var (
		name      string
		newSecret bool
	)

	cmd := &cobra.Command{
		Use:   "update <vault-id>",
		Short: "Rename a vault and/or replace its secret",
		Long: "update renames a vault with --name and/or asks for a new secret with\n" +
			"--secret. The new secret is encrypted under the vault's existing salt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renamed := cmd.Flags().Changed("name")
			if !renamed && !newSecret {
				return ErrNothingToUpdate
			}

			vault, err := a.services.VaultService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err = a.unlock(false); err != nil {
				return err
			}

			var namePtr, secretPtr *string
			if renamed {
				namePtr = &name
			}
			if newSecret {
				// The current secret must open first, or a mistyped password
				// would re-key the vault under a password nobody knows.
				if _, err = a.services.VaultService.RevealRecord(vault); err != nil {
					a.forgetWrongPassword(err)
					return err
				}

				secret, err := a.prompter.Password("New secret: ")
				if err != nil {
					return err
				}
				secretPtr = &secret
			}

			var updated models.Vault
			err = a.withSpinner("saving", func() (err error) {
				updated, err = a.services.VaultService.Update(cmd.Context(), vault, namePtr, secretPtr)
				return err
			})
			if err != nil {
				a.forgetWrongPassword(err)
				return err
			}

			a.success("updated vault %q (%s)", updated.Name, updated.VaultID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new vault name")
	cmd.Flags().BoolVar(&newSecret, "secret", false, "prompt for a new secret")
	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <vault-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a vault with its salt and ciphertext",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := a.prompter.Line(fmt.Sprintf("Delete vault %s? This cannot be undone [y/N]: ", args[0]))
				if err != nil {
					return err
				}
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					return ErrAborted
				}
			}

			if err := a.services.VaultService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			a.success("deleted vault %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "Client\n%s\n", a.buildInfo)

			info, err := a.services.ServerInfo.ServerVersion(cmd.Context())
			if err != nil {
				a.warn("server version unavailable: %v", err)
				return nil
			}
			fmt.Fprintf(a.out, "Server\n%s\n", info)
			return nil
		},
	}
}

// forgetWrongPassword locks the session when err says the password did not
// open a vault, so that an interactive session asks again.
func (a *App) forgetWrongPassword(err error) {
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		a.session.Clear()
	}
}
