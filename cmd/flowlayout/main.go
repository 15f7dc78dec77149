// Command flowlayout lays out, draws and previews flow layout scenes.
package main

import (
	"os"

	"github.com/go-drift/flowlayout/cmd/flowlayout/cmd"
	"github.com/go-drift/flowlayout/pkg/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		errors.ReportErr("flowlayout", err)
		os.Exit(1)
	}
}
