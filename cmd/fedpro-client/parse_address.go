package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/sessamekesh/fedpro-client/pkg/session"
	"github.com/spf13/cobra"
)

func newParseAddressCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-address <address>",
		Short: "Show how a compact address resolves against the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return printAddress(cmd.OutOrStdout(), args[0], cfg.Settings)
		},
	}
}

func printAddress(out io.Writer, designator string, base session.Settings) error {
	address, err := session.ParseAddress(designator)
	if err != nil {
		return err
	}
	settings, err := address.Apply(base)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "server address:    %q\n", address.ServerAddress)
	fmt.Fprintf(out, "protocol settings: %q\n", address.ProtocolSettings)
	fmt.Fprintf(out, "rti address:       %q\n", address.RTIAddress)
	fmt.Fprintf(out, "protocol:          %s\n", settings.Protocol)
	fmt.Fprintf(out, "host:              %s\n", settings.Host)
	fmt.Fprintf(out, "port:              %d\n", settings.Port)
	fmt.Fprintf(out, "path:              %s\n", settings.Path)
	fmt.Fprintf(out, "connect timeout:   %s\n", settings.ConnectTimeout)

	keys := make([]string, 0, len(settings.Extra))
	for k := range settings.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "extra %s=%s\n", k, settings.Extra[k])
	}
	return nil
}
