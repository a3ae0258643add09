// Command pixelperfect opens a window comparing two versions of an image
// with a sweeping divider.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/dixieflatline76/PixelPerfect/config"
	"github.com/dixieflatline76/PixelPerfect/pkg/imagesource"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
	"github.com/dixieflatline76/PixelPerfect/ui"
	"github.com/dixieflatline76/PixelPerfect/util/log"
)

var errAfterWithoutBefore = errors.New("--after needs --before")

// rootFlags are the launch flags of the root command.
type rootFlags struct {
	Before  string
	After   string
	Effect  string
	Resume  string
	Watch   bool
	Demo    bool
	Verbose bool
}

var flags rootFlags

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pixelperfect",
	Short: "Compare two versions of an image with a sweeping divider",
	Long: `PixelPerfect shows a before and an after image in one frame, split by a
divider that sweeps on its own and follows the pointer while you hover or drag.

Pass --before and --after to compare two files, or --before and --effect to
compare a photo with a locally filtered copy. Without images the last
comparison is reopened, or a generated demo pair is shown.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetDebug(flags.Verbose)

		cfg := config.GetConfig()
		opts, err := resolveOptions(cfg, flags)
		if err != nil {
			return err
		}
		log.Debugf("launching with before=%q after=%q effect=%q watch=%v", opts.BeforePath, opts.AfterPath, opts.Effect, opts.Watch)

		pa, err := ui.NewPixelApp(app.NewWithID(config.AppID), cfg, opts)
		if err != nil {
			return err
		}
		pa.Run()
		return nil
	},
}

// resolveOptions validates the flags and fills in what they leave out from
// the last session.
func resolveOptions(cfg *config.Config, f rootFlags) (ui.Options, error) {
	if f.After != "" && f.Before == "" {
		return ui.Options{}, errAfterWithoutBefore
	}
	if f.Resume != "" {
		policy, err := slider.ParseResumePolicy(f.Resume)
		if err != nil {
			return ui.Options{}, err
		}
		cfg.Slider.Resume = policy.String()
	}

	opts := ui.Options{BeforePath: f.Before, AfterPath: f.After, Watch: f.Watch}
	effect := f.Effect
	if f.Before == "" && !f.Demo && fileExists(cfg.LastBefore) {
		opts.BeforePath = cfg.LastBefore
		// An explicit --effect asks for an effect pair, not the stored after file.
		if effect == "" && fileExists(cfg.LastAfter) {
			opts.AfterPath = cfg.LastAfter
		}
		if effect == "" {
			effect = cfg.LastEffect
		}
	}
	if effect != "" {
		e, err := imagesource.ParseEffect(effect)
		if err != nil {
			return ui.Options{}, err
		}
		opts.Effect = e
	}

	for _, p := range []*string{&opts.BeforePath, &opts.AfterPath} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return ui.Options{}, fmt.Errorf("resolving %s: %w", *p, err)
		}
		*p = abs
	}
	return opts, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func init() {
	rootCmd.Flags().StringVarP(&flags.Before, "before", "b", "", "Image shown left of the divider")
	rootCmd.Flags().StringVarP(&flags.After, "after", "a", "", "Image shown right of the divider")
	rootCmd.Flags().StringVarP(&flags.Effect, "effect", "e", "", "Derive the after image from --before with this effect (see 'pixelperfect effects')")
	rootCmd.Flags().StringVar(&flags.Resume, "resume", "", "How the sweep resumes after interaction: glide or snap")
	rootCmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Reload when the image files change")
	rootCmd.Flags().BoolVar(&flags.Demo, "demo", false, "Show the generated demo pair instead of the last comparison")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(effectsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
