package main

import (
	"fmt"
	"io"
	"reflect"
	"text/tabwriter"

	"github.com/corymhall/lstypes/lsp"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List every known request and notification with its payload types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listMethods(cmd.OutOrStdout())
		},
	}
}

func listMethods(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tMETHOD\tPARAMS\tRESULT\tREGISTRATION")
	for _, r := range lsp.Requests() {
		fmt.Fprintf(w, "request\t%s\t%s\t%s\t%s\n",
			r.Method(), typeName(r.NewParams()), typeName(r.NewResult()), typeName(r.NewRegistrationOptions()))
	}
	for _, n := range lsp.Notifications() {
		fmt.Fprintf(w, "notification\t%s\t%s\t-\t%s\n",
			n.Method(), typeName(n.NewParams()), typeName(n.NewRegistrationOptions()))
	}
	return w.Flush()
}

// typeName names the type v points to, or "-" for nil.
func typeName(v any) string {
	if v == nil {
		return "-"
	}
	return reflect.TypeOf(v).Elem().String()
}
