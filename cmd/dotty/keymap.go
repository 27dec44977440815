package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/input"
	"github.com/vovakirdan/dotty/internal/platform"
)

var (
	flagKeymapOS       string
	flagKeymapUnmapped bool
)

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Print the key translation table for a platform",
	Long: `Shows the native keycode every host key is translated to before it is
delivered to ghostty. Keys missing from the platform table are sent as
0xffff and left to the engine.

Examples:
  dotty keymap
  dotty keymap --os windows
  dotty keymap --os macos --unmapped`,
	Args: cobra.NoArgs,
	RunE: runKeymap,
}

func init() {
	keymapCmd.Flags().StringVar(&flagKeymapOS, "os", "auto", "Platform: auto, macos, windows")
	keymapCmd.Flags().BoolVar(&flagKeymapUnmapped, "unmapped", false, "Only list keys without a native keycode")
}

func runKeymap(_ *cobra.Command, _ []string) error {
	o, err := platform.Parse(flagKeymapOS)
	if err != nil {
		return err
	}
	tr := input.NewTranslator(o)

	fmt.Printf("Key translation for %s", o)
	if !o.Supported() {
		fmt.Print(" (no native binding; macOS table)")
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("  %-18s  %s\n", "Key", "Keycode")
	fmt.Printf("  %-18s  %s\n", "---", "-------")

	unmapped := 0
	for _, k := range host.AllKeys() {
		if k == host.KeyNone {
			continue
		}
		code := tr.Keycode(k)
		if code == input.Unknown {
			unmapped++
		} else if flagKeymapUnmapped {
			continue
		}
		fmt.Printf("  %-18s  %#06x\n", k, code)
	}

	fmt.Println()
	fmt.Printf("%d keys, %d unmapped\n", len(host.AllKeys())-1, unmapped)
	return nil
}
