// This file is part of Gophersort.
//
// Gophersort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophersort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophersort.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/comparison"
	"github.com/jetsetilly/gophersort/digest"
	"github.com/jetsetilly/gophersort/logger"
	"github.com/jetsetilly/gophersort/modalflag"
	"github.com/jetsetilly/gophersort/paths"
	"github.com/jetsetilly/gophersort/performance"
	"github.com/jetsetilly/gophersort/performance/limiter"
	"github.com/jetsetilly/gophersort/playmode"
	"github.com/jetsetilly/gophersort/prefs"
	"github.com/jetsetilly/gophersort/random"
	"github.com/jetsetilly/gophersort/report"
	"github.com/jetsetilly/gophersort/sdlaudio"
	"github.com/jetsetilly/gophersort/statsview"
	"github.com/jetsetilly/gophersort/version"
	"github.com/jetsetilly/gophersort/wavwriter"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch runs the mode selected by the arguments and returns the exit value
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "RUN", "TRACE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "RUN":
		err = run(md)

	case "TRACE":
		err = trace(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the flags shared by the PLAY and RUN modes. the flags override the values
// in the preferences file
type sortingFlags struct {
	left         *string
	right        *string
	count        *int
	distribution *string
	speed        *int
	sound        *bool
	seed         *int64
	wav          *string
	jingle       *string
	prefs        *string
	statsview    *bool
}

func addSortingFlags(md *modalflag.Modes) *sortingFlags {
	sf := &sortingFlags{
		left:         md.AddString("left", algorithms.Bubble.Short(), "algorithm for the left panel"),
		right:        md.AddString("right", algorithms.Quick.Short(), "algorithm for the right panel"),
		count:        md.AddInt("count", 30, fmt.Sprintf("number of values in the array (%d to %d)", arrays.MinCount, arrays.MaxCount)),
		distribution: md.AddString("distribution", arrays.Random.String(), "distribution of values in the array"),
		speed:        md.AddInt("speed", 5, "speed of the sort (1 to 10)"),
		sound:        md.AddBool("sound", true, "audio feedback"),
		seed:         md.AddInt64("seed", 0, "seed for random arrays. zero for a time based seed"),
		wav:          md.AddString("wav", "", "record audio to wav file"),
		jingle:       md.AddString("jingle", "", "wav or mp3 file to play on completion"),
		prefs:        md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
	}
	if statsview.Available() {
		sf.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return sf
}

// overrides returns the preferences string for the flags that have been set
// on the command line
func (sf *sortingFlags) overrides(md *modalflag.Modes) string {
	s := []string{*sf.prefs}
	md.Visit(func(flg string) {
		switch flg {
		case "left":
			s = append(s, "sorting.left::"+*sf.left)
		case "right":
			s = append(s, "sorting.right::"+*sf.right)
		case "count":
			s = append(s, fmt.Sprintf("sorting.elementCount::%d", *sf.count))
		case "distribution":
			s = append(s, "sorting.distribution::"+*sf.distribution)
		case "speed":
			s = append(s, fmt.Sprintf("sorting.speed::%d", *sf.speed))
		case "sound":
			s = append(s, fmt.Sprintf("sorting.sound::%v", *sf.sound))
		}
	})
	return strings.Join(s, "; ")
}

// preferences are loaded from disk with the command line overrides taking
// priority
func (sf *sortingFlags) preferences(md *modalflag.Modes) (*comparison.Preferences, error) {
	pth, err := comparison.DefaultPreferencesPath()
	if err != nil {
		return nil, err
	}

	p, err := comparison.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(sf.overrides(md))
	err = p.Load()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gophersort", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (sf *sortingFlags) launchStatsview(output io.Writer) {
	if sf.statsview != nil && *sf.statsview {
		statsview.Launch(output)
	}
}

func (sf *sortingFlags) loadJingle() (*audio.Sample, error) {
	if *sf.jingle == "" {
		return nil, nil
	}
	return audio.LoadSample(*sf.jingle)
}

func play(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	sf := addSortingFlags(md)
	fps := md.AddInt("fps", playmode.DefaultFPS, "display refresh rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sf.launchStatsview(md.Output)

	pref, err := sf.preferences(md)
	if err != nil {
		return err
	}

	jingle, err := sf.loadJingle()
	if err != nil {
		return err
	}

	var sinks audio.Multi
	var flusher playmode.Flusher

	// the comparison can run without sound if there is no audio device
	aud, err := sdlaudio.NewAudio()
	if err != nil {
		logger.Logf(logger.Allow, "gophersort", "no audio: %v", err)
	} else {
		defer aud.End()
		if jingle != nil {
			aud.SetJingle(jingle)
		}
		sinks = append(sinks, aud)
		flusher = aud
	}

	// add wavwriter if wav argument has been specified
	if *sf.wav != "" {
		aw, err := wavwriter.New(*sf.wav, 0, nil)
		if err != nil {
			return err
		}
		if jingle != nil {
			aw.SetJingle(jingle)
		}
		defer func() {
			if err := aw.EndMixing(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		sinks = append(sinks, aw)
	}

	cmp, err := comparison.NewComparison(arrays.NewGenerator(random.NewRandom(*sf.seed)), sinks, nil, pref)
	if err != nil {
		return err
	}

	err = playmode.Play(cmp, playmode.Config{FPS: *fps, Audio: flusher})
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return pref.Save()
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	sf := addSortingFlags(md)
	fps := md.AddInt("fps", playmode.DefaultFPS, "rate of the simulated clock")
	limit := md.AddDuration("limit", time.Hour, "longest simulated run time")
	format := md.AddString("format", report.Text.String(), "report format: text, yaml")
	graph := md.AddBool("graph", false, "draw the comparison and swap counts over time")
	useDigest := md.AddBool("digest", false, "add a digest of the steps of each panel to the report")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}

	sf.launchStatsview(md.Output)

	pref, err := sf.preferences(md)
	if err != nil {
		return err
	}

	jingle, err := sf.loadJingle()
	if err != nil {
		return err
	}

	// the run is timed by a simulated clock. the audio written to the wav
	// file is positioned by the same clock
	start := time.Now()
	clk := limiter.NewVirtual(*fps, start)

	var sinks audio.Multi

	if *sf.wav != "" {
		aw, err := wavwriter.New(*sf.wav, 0, clk.Now)
		if err != nil {
			return err
		}
		if jingle != nil {
			aw.SetJingle(jingle)
		}
		defer func() {
			if err := aw.EndMixing(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		sinks = append(sinks, aw)
	}

	var audioDigest *digest.Audio
	if *useDigest {
		audioDigest = digest.NewAudio()
		sinks = append(sinks, audioDigest)
	}

	rnd := random.NewRandom(*sf.seed)

	cmp, err := comparison.NewComparison(arrays.NewGenerator(rnd), sinks, nil, pref)
	if err != nil {
		return err
	}

	var stepDigests [comparison.NumPanels]*digest.Steps
	if *useDigest {
		for _, pn := range comparison.Panels() {
			stepDigests[pn] = digest.NewSteps()
			if err := cmp.SetFactory(pn, stepDigests[pn].Factory); err != nil {
				return err
			}
		}
	}

	for _, err := range cmp.Start(clk.Wait()) {
		logger.Log(logger.Allow, "gophersort", err)
	}

	var prg report.Progress

	for cmp.Global().Running {
		now := clk.Wait()
		if now.Sub(start) > *limit {
			return fmt.Errorf("comparison did not finish within %v", *limit)
		}
		for _, err := range cmp.Tick(now) {
			logger.Log(logger.Allow, "gophersort", err)
		}
		if *graph {
			prg.Sample(cmp)
		}
	}

	s := report.NewSummary(cmp, rnd.Seed())
	if *useDigest {
		for _, pn := range comparison.Panels() {
			s.SetDigest(pn, stepDigests[pn].Hash())
		}
		s.AudioDigest = audioDigest.Hash()
	}

	err = s.Write(md.Output, f)
	if err != nil {
		return err
	}

	if *graph {
		fmt.Fprintln(md.Output)
		return prg.Graph(md.Output, 70, 10, false)
	}

	return nil
}

func trace(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Values to sort can be given as arguments. If no values are given then an\narray is generated with the -count, -distribution and -seed flags.")

	alg := md.AddString("algorithm", algorithms.Bubble.Short(), "algorithm to trace")
	count := md.AddInt("count", 10, "number of values in the generated array")
	distribution := md.AddString("distribution", arrays.Random.String(), "distribution of values in the generated array")
	seed := md.AddInt64("seed", 0, "seed for the generated array. zero for a time based seed")
	mv := md.AddString("memviz", "", "write the state of the algorithm to file (in dot format)")
	at := md.AddInt("at", 0, "the step at which to write the memviz file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	a, err := algorithms.Parse(*alg)
	if err != nil {
		return err
	}

	var values []float64
	if len(md.RemainingArgs()) > 0 {
		for _, s := range md.RemainingArgs() {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("value is not a number: %s", s)
			}
			values = append(values, v)
		}
	} else {
		d, err := arrays.ParseDistribution(*distribution)
		if err != nil {
			return err
		}
		values = arrays.NewGenerator(random.NewRandom(*seed)).Generate(arrays.ClampCount(*count), d)
	}

	prd, err := algorithms.NewProducer(a, values)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %v\n", a, values)

	for n := 0; ; n++ {
		if *mv != "" && n == *at {
			err := writeMemviz(*mv, prd)
			if err != nil {
				return err
			}
		}

		step, done := prd.Next()
		if done {
			fmt.Fprintf(md.Output, "%4d  done     %v  comparisons %d  swaps %d\n", n, step.Array, step.Comparisons, step.Swaps)
			return nil
		}

		action := "compare"
		indices := step.Comparing
		if len(step.Swapped) > 0 {
			action = "swap"
			indices = step.Swapped
		}
		fmt.Fprintf(md.Output, "%4d  %-7s  %v  %v\n", n, action, indices, step.Array)
	}
}

func writeMemviz(filename string, prd algorithms.Producer) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("memviz: %w", err)
		}
	}()
	memviz.Map(f, prd)
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	alg := md.AddString("algorithm", algorithms.Quick.Short(), "algorithm to measure")
	count := md.AddInt("count", arrays.MaxCount, "number of values in each array")
	distribution := md.AddString("distribution", arrays.Random.String(), "distribution of values in each array")
	seed := md.AddInt64("seed", 0, "seed for random arrays. zero for a time based seed")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	survey := md.AddInt("survey", 0, "average the counts of every algorithm over this many arrays")
	workers := md.AddInt("workers", runtime.NumCPU(), "number of workers for the survey")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	d, err := arrays.ParseDistribution(*distribution)
	if err != nil {
		return err
	}

	gen := arrays.NewGenerator(random.NewRandom(*seed))
	n := arrays.ClampCount(*count)

	if *survey > 0 {
		return performance.RunProfiler(prf, "survey", func() error {
			s, err := performance.Survey(gen, n, d, *survey, *workers)
			if err != nil {
				return err
			}
			return performance.WriteSurvey(md.Output, s)
		})
	}

	a, err := algorithms.Parse(*alg)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, a, gen, n, d, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")
	path := md.AddBool("path", false, "display the path to the resources directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *path {
		pth, err := paths.ResourcePath("", "")
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output, pth)
		return nil
	}

	if *revision {
		fmt.Fprintln(md.Output, version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)

	return nil
}
