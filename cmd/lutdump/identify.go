package main

import (
	"fmt"
	"os"

	"github.com/MicronOxford/SIMcheck/internal/lut"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [lut-file]",
	Short: "Inspect LUT file layout and channel info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	logrus.Debugf("read %d bytes from %s", len(data), path)

	table := lut.Split(data)
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("File size:  %d bytes\n", len(data))
	fmt.Printf("Layout:     %s\n", table.LayoutName())
	for _, ch := range table.Channels() {
		if len(ch.Values) == 0 {
			continue
		}
		min, max := ch.Range()
		fmt.Printf("%-11s %d entries, min %d, max %d\n", ch.Name+":", len(ch.Values), min, max)
	}
	if table.Grayscale() {
		fmt.Println("Grayscale:  yes (all channels identical)")
	}
	return nil
}
