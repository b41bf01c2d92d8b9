// votectl is the developer CLI for the vote_dao contract: derive record
// addresses offline, decode stored record blobs and inspect event lines.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"vote_dao/contract"
	"vote_dao/indexer"
	"vote_dao/sdk"
)

func main() {
	root := &cobra.Command{
		Use:   "votectl",
		Short: "Inspect vote_dao governance state offline",
		SilenceUsage: true,
	}
	root.AddCommand(addrCmd(), decodeCmd(), eventCmd(), methodsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr <record> [discriminator]",
		Short: "Derive a record address (no chain lookup needed)",
		Long: `Derive the deterministic address of a protocol record.

Records: treasury-config, x-mint, sol-vault, mint-authority,
proposal-counter, winner, proposal <id>, voter <owner>`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolveAddr(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr.String())
			return nil
		},
	}
	return cmd
}

func resolveAddr(args []string) (sdk.Address, error) {
	switch args[0] {
	case "treasury-config":
		return contract.TreasuryConfigAddress(), nil
	case "x-mint":
		return contract.XMintAddress(), nil
	case "sol-vault":
		return contract.SolVaultAddress(), nil
	case "mint-authority":
		return contract.MintAuthorityAddress(), nil
	case "proposal-counter":
		return contract.ProposalCounterAddress(), nil
	case "winner":
		return contract.WinnerAddress(), nil
	case "proposal":
		if len(args) < 2 {
			return "", fmt.Errorf("proposal needs an id (0-255)")
		}
		id, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return "", fmt.Errorf("proposal id must be 0-255: %w", err)
		}
		return contract.ProposalAddress(uint8(id)), nil
	case "voter":
		if len(args) < 2 {
			return "", fmt.Errorf("voter needs an owner address")
		}
		return contract.VoterAddress(sdk.Address(args[1])), nil
	default:
		return "", fmt.Errorf("unknown record %q", args[0])
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex-blob>",
		Short: "Decode a hex-encoded record blob into JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("blob must be hex: %w", err)
			}
			record, err := decodeRecord(blob)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		},
	}
}

// decodeRecord tries each record codec; the leading kind byte picks exactly one.
func decodeRecord(blob []byte) (any, error) {
	if cfg, err := contract.DecodeTreasuryConfig(blob); err == nil {
		return cfg, nil
	}
	if c, err := contract.DecodeProposalCounter(blob); err == nil {
		return c, nil
	}
	if p, err := contract.DecodeProposal(blob); err == nil {
		return p, nil
	}
	if v, err := contract.DecodeVoter(blob); err == nil {
		return v, nil
	}
	if w, err := contract.DecodeWinner(blob); err == nil {
		return w, nil
	}
	return nil, fmt.Errorf("blob does not decode as any known record")
}

func eventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event <line>",
		Short: "Parse a contract event line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := indexer.ParseEvent(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kind: %s\n", ev.Kind)
			keys := make([]string, 0, len(ev.Fields))
			for k := range ev.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, ev.Fields[k])
			}
			return nil
		},
	}
}

func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the contract's transition methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			names := contract.Methods()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
