package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/jsvensson/ankh"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/extract"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	flagTo          string
	flagPrecision   int
	flagCount       int
	flagStep        float64
	flagHue         float64
	flagSeed        uint64
	flagTonePalette string
)

var parseCmd = &cobra.Command{
	Use:   "parse <color>",
	Short: "Detect the unit of a color and print its components",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var toneCmd = &cobra.Command{
	Use:   "tone [colors...]",
	Short: "Classify colors, or a palette file, into a tone",
	RunE:  runTone,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <hex> <hex>",
	Short: "Print the WCAG contrast ratio of two hex colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <color>",
	Short: "Print a Lab lightness scale around a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var sampleCmd = &cobra.Command{
	Use:   "sample <tone>",
	Short: "Draw random colors from a tone's saturation/lightness range",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Print the dominant colors of an image and their tone",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func addColorCommands(root *cobra.Command) {
	convertCmd.Flags().StringVar(&flagTo, "to", "hex", "target unit (hex, rgb, rgba, hsl, lab, lch, xyz)")
	toneCmd.Flags().StringVar(&flagTonePalette, "palette", "", "classify every color of a palette file")
	contrastCmd.Flags().IntVar(&flagPrecision, "precision", 2, "decimal places of the ratio")
	scaleCmd.Flags().IntVar(&flagCount, "count", 5, "number of shades")
	scaleCmd.Flags().Float64Var(&flagStep, "step", 10, "lightness step between shades")
	sampleCmd.Flags().IntVar(&flagCount, "count", 5, "number of colors")
	sampleCmd.Flags().Float64Var(&flagHue, "hue", 0, "hue of the sampled colors (0-360)")
	sampleCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed (default: time based)")
	extractCmd.Flags().IntVar(&flagCount, "count", 5, "number of colors")

	root.AddCommand(parseCmd, convertCmd, toneCmd, contrastCmd, scaleCmd, sampleCmd, extractCmd)
}

// toneName formats a tone for display.
func toneName(t color.Tone) string {
	return cases.Title(language.English).String(t.String())
}

func runParse(cmd *cobra.Command, args []string) error {
	v, err := reporter.ParseString(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "unit:       %s\n", v.Unit())
	fmt.Fprintf(out, "canonical:  %s\n", v)
	fmt.Fprintf(out, "components: %v\n", v.Components())
	if a, ok := v.Alpha(); ok {
		fmt.Fprintf(out, "alpha:      %s\n", strconv.FormatFloat(a, 'f', -1, 64))
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	unit, err := color.ParseUnit(flagTo)
	if err != nil {
		return err
	}
	out, err := reporter.ConvertString(args[0], unit)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runTone(cmd *cobra.Command, args []string) error {
	if flagTonePalette != "" {
		if len(args) > 0 {
			return fmt.Errorf("pass either colors or --palette, not both")
		}
		p, err := ankh.Load(flagTonePalette)
		if err != nil {
			return err
		}
		if err := p.CheckTone(); err != nil {
			log.Warningf("%s: %s", flagTonePalette, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), toneName(p.Tone()))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no colors given")
	}
	values := make([]color.Value, 0, len(args))
	for _, arg := range args {
		v, err := reporter.ParseString(arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), toneName(color.ClassifyValues(values)))
	return nil
}

func runContrast(cmd *cobra.Command, args []string) error {
	ratio, err := color.ContrastFromHex(args[0], args[1], flagPrecision)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:1\n", strconv.FormatFloat(ratio, 'f', -1, 64))
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	if flagCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", flagCount)
	}
	v, err := reporter.ParseString(args[0])
	if err != nil {
		return err
	}
	for _, shade := range color.LightnessScale(v, flagCount, flagStep) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", shade.Convert(color.Hex), shade.Rounded(2))
	}
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	if flagCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", flagCount)
	}
	tone, err := color.ParseTone(args[0])
	if err != nil {
		return err
	}
	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("sampling %s with seed %d", tone, seed)

	colors, err := color.ToneSample(rand.New(rand.NewPCG(seed, seed)), tone, flagHue, flagCount)
	if err != nil {
		return err
	}
	for _, c := range colors {
		v := c.Value()
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", v.Convert(color.Hex), v.Rounded(2))
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	swatches, err := extract.Open(args[0], flagCount)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range swatches {
		fmt.Fprintf(out, "%s  %5.1f%%\n", s.Value, s.Percentage)
	}
	fmt.Fprintf(out, "tone: %s\n", toneName(color.ClassifyValues(extract.Values(swatches))))
	return nil
}
