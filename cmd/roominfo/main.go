// Command roominfo prints acoustic properties of room simulation presets.
//
// Usage:
//
//	roominfo [flags] [preset-id ...]
//
// Without arguments it prints info for all known presets.
//
// Examples:
//
//	roominfo living_room
//	roominfo -size small
//	roominfo -rate 48000 auditorium hall
//	roominfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-acoustics/room"
)

func main() {
	rate := flag.Int("rate", 16000, "sample rate for impulse response metrics")
	size := flag.String("size", "", "filter by room size (small, medium, large)")
	list := flag.Bool("list", false, "list available preset ids")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roominfo [flags] [preset-id ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints acoustic properties of room simulation presets.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  roominfo living_room auditorium\n")
		fmt.Fprintf(os.Stderr, "  roominfo -size small\n")
		fmt.Fprintf(os.Stderr, "  roominfo -list\n")
	}
	flag.Parse()

	sim := room.NewSimulator(room.WithSampleRate(*rate))

	if *list {
		for _, p := range sim.Presets() {
			fmt.Println(p.ID)
		}
		return
	}

	presets := selectPresets(sim, flag.Args(), *size)
	if len(presets) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching presets\n")
		os.Exit(1)
	}

	printAnalysis(sim, presets)
}

func selectPresets(sim *room.Simulator, ids []string, sizeFilter string) []room.Preset {
	if len(ids) > 0 {
		var result []room.Preset
		for _, id := range ids {
			id = strings.ToLower(strings.TrimSpace(id))
			p, ok := sim.Lookup(id)
			if !ok {
				fmt.Fprintf(os.Stderr, "warning: unknown preset %q (use -list to see available)\n", id)
				continue
			}
			result = append(result, p)
		}
		return result
	}

	switch strings.ToLower(strings.TrimSpace(sizeFilter)) {
	case "":
		return sim.Presets()
	case "small":
		return sim.PresetsBySize(room.SizeSmall)
	case "medium":
		return sim.PresetsBySize(room.SizeMedium)
	case "large":
		return sim.PresetsBySize(room.SizeLarge)
	default:
		fmt.Fprintf(os.Stderr, "warning: unknown size %q (use small, medium or large)\n", sizeFilter)
		return nil
	}
}

func printAnalysis(sim *room.Simulator, presets []room.Preset) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Preset\tSize\tVolume [m3]\tRT60 [s]\tSabine [s]\tClarity\tC50 [dB]\tDRR [dB]\tWER +%%\tRecommendation\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-----------\t--------\t----------\t-------\t--------\t--------\t------\t--------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, p := range presets {
		m := sim.RIRMetrics(p.ID)
		a := m.Acoustics

		drr := fmt.Sprintf("%.2f", m.DirectToReverberantDB)
		if math.IsInf(m.DirectToReverberantDB, 1) {
			drr = "inf"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.2f\t%.4f\t%s\t%.0f\t%s\t%.0f\t%s\n",
			p.ID,
			p.Size,
			a.Volume,
			a.RT60,
			a.CalculatedRT60,
			a.Clarity,
			a.C50,
			drr,
			a.Impact.WERIncrease,
			a.Impact.Recommendation,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
