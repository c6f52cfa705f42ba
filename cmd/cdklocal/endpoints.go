package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/basewarphq/cdklocal/lsenv"
)

type EndpointsCmd struct{}

func (c *EndpointsCmd) Run(settings lsenv.Settings, stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tDEFAULT")
	fmt.Fprintf(w, "%s\t%s\n", lsenv.EndpointURL, settings.EndpointURL())
	fmt.Fprintf(w, "%s\t%s\n", lsenv.EndpointURLS3, settings.S3EndpointURL())
	return w.Flush()
}
