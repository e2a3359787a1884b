package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/avagen/avagen"
	"github.com/avagen/avagen/utils"
)

const HelpBanner = `
┌─┐┬  ┬┌─┐┌─┐┌─┐┌┐┌
├─┤└┐┌┘├─┤│ ┬├┤ │││
┴ ┴ └┘ ┴ ┴└─┘└─┘┘└┘

Procedural avatar and mood orb icon generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// result holds the relevant information about one generated icon set.
type result struct {
	name  string
	files []string
	err   error
}

// Version indicates the current build version.
var Version string

var (
	// Flags
	config  = flag.String("config", "", "JSON preset file (uses the built-in presets when empty)")
	outDir  = flag.String("out", "output/generated", "Output directory, or - to pipe the first preset to stdout")
	resDir  = flag.String("res", "app/src/main/res", "Android res directory used together with -orb")
	orbMood = flag.String("orb", "", "Render a mood orb launcher set for the given mood")
	workers = flag.Int("conc", runtime.NumCPU(), "Number of icons to render concurrently")

	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	now := time.Now()

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("✦ AVAGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the icons...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	if *orbMood != "" {
		generateOrb(*orbMood, *resDir)
		printSummary(1, now)
		return
	}

	presets := loadPresets(*config)

	if *outDir == pipeName {
		pipeFirstPreset(presets)
		return
	}

	emitter, err := avagen.NewEmitter(*outDir)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to prepare the output directory: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	// Limit the concurrently running workers to maxWorkers.
	if *workers <= 0 || *workers > maxWorkers {
		*workers = runtime.NumCPU()
	}

	spinner.Start()
	generated := generateAll(presets, emitter, *workers)
	stopMsg := fmt.Sprintf("%s %s\n",
		utils.DecorateText("✦ AVAGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the icons... ✔", utils.DefaultMessage))
	spinner.StopMsg = stopMsg
	spinner.Stop()

	printSummary(generated, now)
}

// generateAll renders the presets on a bounded worker pool. Each render
// owns its canvas, palette and random stream, so the presets are processed
// concurrently with zero shared state.
func generateAll(presets []avagen.Preset, emitter *avagen.Emitter, workers int) int {
	var wg sync.WaitGroup

	jobs := make(chan avagen.Preset)
	ch := make(chan result)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(jobs, emitter, ch)
		}()
	}

	go func() {
		for _, p := range presets {
			jobs <- p
		}
		close(jobs)
	}()

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var generated int
	for res := range ch {
		printStatus(res)
		if res.err == nil {
			generated++
		}
	}
	return generated
}

// consumer renders and emits the presets read from the jobs channel and
// sends the outcome on the results channel.
func consumer(jobs <-chan avagen.Preset, emitter *avagen.Emitter, res chan<- result) {
	for p := range jobs {
		// Icon sets are always derived from a base render at full size.
		p.Size = avagen.BaseSize

		icon, err := avagen.Render(p.RenderRequest)
		if err != nil {
			res <- result{name: p.Name, err: err}
			continue
		}

		files, err := emitter.Emit(p.Name, icon)
		res <- result{name: p.Name, files: files, err: err}
	}
}

// generateOrb renders a mood orb and writes the launcher set into the
// Android res directory.
func generateOrb(mood, resDir string) {
	orb, err := avagen.RenderMoodOrb(avagen.Mood(mood), avagen.DefaultOrbOptions())
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to render the mood orb: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	files, err := avagen.WriteLauncherSet(resDir, orb)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to write the launcher set: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	for _, f := range files {
		fmt.Fprintf(os.Stderr, "Saved: %s%s\n",
			utils.DecorateText(f, utils.SuccessMessage), utils.DefaultColor)
	}
}

// loadPresets reads the preset file or falls back to the built-in presets.
func loadPresets(path string) []avagen.Preset {
	if path == "" {
		return avagen.BuiltinPresets()
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the preset file: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	defer f.Close()

	presets, err := avagen.LoadPresets(f)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to parse the preset file: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if len(presets) == 0 {
		log.Fatal(utils.DecorateText("The preset file holds no presets!\n", utils.ErrorMessage))
	}
	return presets
}

// pipeFirstPreset renders the first preset and writes its base image to
// stdout as PNG.
func pipeFirstPreset(presets []avagen.Preset) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdout\n", utils.ErrorMessage))
	}

	p := presets[0]
	p.Size = avagen.BaseSize
	icon, err := avagen.Render(p.RenderRequest)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Error rendering the icon: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if err := png.Encode(os.Stdout, icon.Base); err != nil {
		log.Fatalf(
			utils.DecorateText("Error encoding the icon: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

// printStatus displays the relevant information about one generated icon set.
func printStatus(res result) {
	if res.err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError generating %s: %s", utils.ErrorMessage),
			res.name,
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", res.err.Error()), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(os.Stderr, "\nGenerated %s %s(%d files)%s\n",
		utils.DecorateText(res.name, utils.SuccessMessage),
		utils.DefaultColor, len(res.files), utils.DefaultColor,
	)
}

func printSummary(generated int, start time.Time) {
	fmt.Fprintf(os.Stderr, "\nGenerated %d icon set(s) in: %s %s\n",
		generated,
		utils.DecorateText(utils.FormatTime(time.Since(start)), utils.SuccessMessage),
		utils.DefaultColor,
	)
}
