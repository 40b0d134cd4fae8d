package main

import (
	"fmt"
	"os"

	"github.com/MicronOxford/SIMcheck/internal/lut"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	logrus.Debugf("read %d bytes from %s", len(data), path)

	if err := lut.WriteReport(os.Stdout, data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
