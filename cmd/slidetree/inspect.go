package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/VantageDataChat/slidetree"
	"github.com/spf13/cobra"
)

var (
	inspectMaster string
	inspectLayout string
	inspectSlide  string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report the shapes of a part with inherited placeholder values",
	Long: `Inspect loads a master, a layout linked to it and a slide linked to the
layout (any of them may be omitted) and reports the shapes of the deepest part
given. Placeholder geometry and fills are resolved through the chain.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		part, err := loadChain(inspectMaster, inspectLayout, inspectSlide, slog.Default())
		if err != nil {
			return err
		}
		return encodeReport(cmd.OutOrStdout(), cfg.Output.Format, BuildReport(part))
	},
}

// loadChain reads the given parts, linking each to the one above it, and
// returns the deepest.
func loadChain(masterPath, layoutPath, slidePath string, logger *slog.Logger) (slidetree.Part, error) {
	if masterPath == "" && layoutPath == "" && slidePath == "" {
		return nil, errors.New("at least one of --master, --layout or --slide is required")
	}
	opts := []slidetree.Option{slidetree.WithLogger(logger)}

	var master *slidetree.SlideMaster
	if masterPath != "" {
		err := withFile(masterPath, func(r io.Reader) (err error) {
			master, err = slidetree.ReadSlideMaster(r, opts...)
			return err
		})
		if err != nil {
			return nil, err
		}
		if layoutPath == "" && slidePath == "" {
			return master, nil
		}
	}

	var layout *slidetree.SlideLayout
	if layoutPath != "" {
		err := withFile(layoutPath, func(r io.Reader) (err error) {
			layout, err = slidetree.ReadSlideLayout(r, master, opts...)
			return err
		})
		if err != nil {
			return nil, err
		}
		if slidePath == "" {
			return layout, nil
		}
	}

	var slide *slidetree.Slide
	err := withFile(slidePath, func(r io.Reader) (err error) {
		slide, err = slidetree.ReadSlide(r, layout, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return slide, nil
}

func withFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectMaster, "master", "", "Slide master part (slideMasterN.xml)")
	inspectCmd.Flags().StringVar(&inspectLayout, "layout", "", "Slide layout part (slideLayoutN.xml)")
	inspectCmd.Flags().StringVar(&inspectSlide, "slide", "", "Slide part (slideN.xml)")
}
