package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/purepath/pkg/config"
	"github.com/arthur-debert/purepath/pkg/patherrors"
	"github.com/arthur-debert/purepath/pkg/purepath"

	"golang.org/x/text/language"
)

// pathReport is the JSON shape printed by the parse command.
type pathReport struct {
	Input      string   `json:"input"`
	Rendered   string   `json:"rendered"`
	Posix      string   `json:"posix"`
	Drive      string   `json:"drive"`
	Root       string   `json:"root"`
	Anchor     string   `json:"anchor"`
	Parts      []string `json:"parts"`
	Filename   string   `json:"filename"`
	Extension  string   `json:"extension"`
	Extensions []string `json:"extensions"`
	Absolute   bool     `json:"absolute"`
	Reserved   bool     `json:"reserved"`
}

func newParseCmd(flavorFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "parse PATH",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: MsgParseExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			p := purepath.Parse(args[0], fl)
			report := pathReport{
				Input:      args[0],
				Rendered:   p.String(),
				Posix:      p.ToPosix(),
				Drive:      p.Drive(),
				Root:       p.Root(),
				Anchor:     p.Anchor(),
				Parts:      p.Parts(),
				Filename:   p.Filename(),
				Extension:  p.Extension(),
				Extensions: p.Extensions(),
				Absolute:   p.IsAbsolute(),
				Reserved:   p.IsReserved(),
			}
			if cfg.Output == "json" {
				return printJSON(cmd, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "path:       %s\n", report.Rendered)
			fmt.Fprintf(cmd.OutOrStdout(), "drive:      %q\n", report.Drive)
			fmt.Fprintf(cmd.OutOrStdout(), "root:       %q\n", report.Root)
			fmt.Fprintf(cmd.OutOrStdout(), "parts:      %v\n", report.Parts)
			fmt.Fprintf(cmd.OutOrStdout(), "filename:   %q\n", report.Filename)
			fmt.Fprintf(cmd.OutOrStdout(), "extensions: %v\n", report.Extensions)
			fmt.Fprintf(cmd.OutOrStdout(), "absolute:   %v\n", report.Absolute)
			fmt.Fprintf(cmd.OutOrStdout(), "reserved:   %v\n", report.Reserved)
			return nil
		},
	}
}

func newJoinCmd(flavorFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "join BASE FRAGMENT...",
		Short:   MsgJoinShort,
		Long:    MsgJoinLong,
		Example: MsgJoinExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			joined := purepath.Parse(args[0], fl).Join(args[1:]...)
			return printPath(cmd, cfg, joined)
		},
	}
}

func newSafeJoinCmd(flavorFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "safejoin BASE FRAGMENT",
		Short:   MsgSafeJoinShort,
		Long:    MsgSafeJoinLong,
		Example: MsgSafeJoinExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			joined, ok := purepath.Parse(args[0], fl).TrySafeJoin(args[1])
			if !ok {
				return patherrors.Newf(patherrors.ErrInvalidInput,
					"fragment %q would escape %q", args[1], args[0])
			}
			return printPath(cmd, cfg, joined)
		},
	}
}

func newMatchCmd(flavorFlag *string) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:     "match PATH PATTERN",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			if err := purepath.ValidatePattern(args[1]); err != nil {
				return err
			}
			p := purepath.Parse(args[0], fl)
			matched := p.Match(args[1])
			if full {
				matched = p.FullMatch(args[1])
			}
			if cfg.Output == "json" {
				return printJSON(cmd, map[string]bool{"matched": matched})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", matched)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Require the pattern to cover the whole path")
	return cmd
}

func newRelCmd(flavorFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:     "rel PATH ANCESTOR",
		Short:   MsgRelShort,
		Long:    MsgRelLong,
		Example: MsgRelExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			rel, err := purepath.Parse(args[0], fl).RelativeTo(purepath.Parse(args[1], fl))
			if err != nil {
				return err
			}
			return printPath(cmd, cfg, rel)
		},
	}
}

func newNormCaseCmd(flavorFlag *string) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:     "normcase PATH",
		Short:   MsgNormCaseShort,
		Long:    MsgNormCaseLong,
		Example: MsgNormCaseExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fl, err := resolveSettings(*flavorFlag)
			if err != nil {
				return err
			}
			if locale == "" {
				locale = cfg.Locale
			}
			tag := language.Und
			if locale != "" {
				tag, err = language.Parse(locale)
				if err != nil {
					return patherrors.Wrapf(err, patherrors.ErrInvalidInput,
						"invalid locale %q", locale)
				}
			}
			folded := purepath.Parse(args[0], fl).NormCaseLocale(tag)
			return printPath(cmd, cfg, folded)
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale tag for case folding")
	return cmd
}

func printPath(cmd *cobra.Command, cfg *config.Config, p purepath.PurePath) error {
	if cfg.Output == "json" {
		return printJSON(cmd, map[string]string{"path": p.String(), "posix": p.ToPosix()})
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.String())
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
