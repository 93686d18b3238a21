// SPDX-License-Identifier: EPL-2.0

// Command audfx applies effect chains to WAV files or to synthesized tones.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/filters"
	"github.com/ik5/audfx/formats/wav"
)

const argUsage = "audfx [flags] <input.wav>..."

const help = `Apply audio effects to WAV files.

usage:
  %s

effects (comma separated, applied in order):
  %s
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("audfx: ")

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

type config struct {
	fx string

	echoDelay int
	echoDecay float64
	taps      string

	segment       int
	gateThreshold float64
	gateLength    int

	pans     string
	roomSize float64
	damping  float64
	velocity float64

	corrThreshold float64
	corrWindow    int

	attack  float64
	decay   float64
	sustain float64
	release float64

	cutoff    float64
	resonance float64

	synth     string
	frequency float64
	duration  float64
	amplitude float64
	duty      float64
	synthRate int

	rate     int
	bitDepth int
	jobs     int
	outDir   string
	info     bool
}

func newFlagSet(cfg *config) *flag.FlagSet {
	set := flag.NewFlagSet("audfx", flag.ContinueOnError)
	set.Usage = func() {
		fmt.Fprintf(set.Output(), help, argUsage, strings.Join(effectNames(), ", "))
		fmt.Fprintln(set.Output(), "flags:")
		set.PrintDefaults()
	}

	set.StringVar(&cfg.fx, "fx", "", "comma separated effect chain")

	set.IntVar(&cfg.echoDelay, "echo-delay", effects.DefaultEchoDelay, "echo delay in frames")
	set.Float64Var(&cfg.echoDecay, "echo-decay", effects.DefaultEchoDecay, "echo gain")
	set.StringVar(&cfg.taps, "taps", "", "multiecho taps as delay:decay,... (default 4000:0.6,8000:0.4,12000:0.2)")

	set.IntVar(&cfg.segment, "segment", effects.DefaultSegmentLength, "segment length in frames for segments")
	set.Float64Var(&cfg.gateThreshold, "gate-threshold", effects.DefaultGateThreshold, "peak that triggers gate reverse")
	set.IntVar(&cfg.gateLength, "gate-length", effects.DefaultGateLength, "gate reverse segment length in frames")

	set.StringVar(&cfg.pans, "pans", "", "surround pan positions in [-1,1] (default -0.8,0.8,0,-0.5,0.5)")
	set.Float64Var(&cfg.roomSize, "room-size", effects.DefaultRoomSize, "reverb room size")
	set.Float64Var(&cfg.damping, "damping", effects.DefaultDamping, "reverb damping")
	set.Float64Var(&cfg.velocity, "velocity", effects.DefaultDopplerVelocity, "doppler velocity as a fraction of the speed of sound")

	set.Float64Var(&cfg.corrThreshold, "corr-threshold", filters.DefaultCorrelationThreshold, "dynkaraoke correlation threshold")
	set.IntVar(&cfg.corrWindow, "corr-window", filters.DefaultCorrelationWindow, "dynkaraoke window in frames")

	set.Float64Var(&cfg.attack, "attack", filters.DefaultEnvelope.Attack, "adsr attack in seconds")
	set.Float64Var(&cfg.decay, "decay", filters.DefaultEnvelope.Decay, "adsr decay in seconds")
	set.Float64Var(&cfg.sustain, "sustain", filters.DefaultEnvelope.SustainLevel, "adsr sustain level")
	set.Float64Var(&cfg.release, "release", filters.DefaultEnvelope.Release, "adsr release in seconds")

	set.Float64Var(&cfg.cutoff, "cutoff", 1000, "lowpass cutoff in Hz")
	set.Float64Var(&cfg.resonance, "resonance", filters.DefaultResonance, "lowpass resonance, > 1 adds feedback")

	set.StringVar(&cfg.synth, "synth", "", "generate input instead of reading files: sine, saw or square")
	set.Float64Var(&cfg.frequency, "freq", 440, "synth frequency in Hz")
	set.Float64Var(&cfg.duration, "duration", 1, "synth duration in seconds")
	set.Float64Var(&cfg.amplitude, "amplitude", filters.DefaultAmplitude, "synth amplitude")
	set.Float64Var(&cfg.duty, "duty", filters.DefaultDutyCycle, "square wave duty cycle")
	set.IntVar(&cfg.synthRate, "synth-rate", filters.DefaultSampleRate, "synth sample rate in Hz")

	set.IntVar(&cfg.rate, "rate", 0, "resample the output to this rate in Hz (0 keeps the input rate)")
	set.IntVar(&cfg.bitDepth, "bitdepth", 0, "output bit depth: 16, 24 or 32 (0 keeps the input depth)")
	set.IntVar(&cfg.jobs, "jobs", runtime.NumCPU(), "files processed in parallel")
	set.StringVar(&cfg.outDir, "outdir", "", "output directory (default: next to each input)")
	set.BoolVar(&cfg.info, "info", false, "print the layout of each input and exit")

	return set
}

func run(args []string) error {
	var cfg config
	set := newFlagSet(&cfg)
	if err := set.Parse(args); err != nil {
		return err
	}

	stages, err := buildStages(&cfg)
	if err != nil {
		return err
	}

	if cfg.synth != "" {
		return runSynth(&cfg, stages)
	}

	inputs := set.Args()
	if len(inputs) == 0 {
		return errors.New(argUsage)
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})

	if cfg.info {
		return printInfo(reg, inputs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return processFiles(ctx, reg, &cfg, inputs, stages)
}

func effectNames() []string {
	return []string{
		"echo", "multiecho", "reverse", "segments", "gate", "surround", "reverb",
		"doppler", "karaoke", "isolate", "dynkaraoke", "adsr", "lowpass", "mono",
	}
}

// buildStages turns the -fx list into stages, followed by the resampler
// when -rate is set.
func buildStages(cfg *config) ([]audfx.Stage, error) {
	var stages []audfx.Stage

	for name := range strings.SplitSeq(cfg.fx, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		stage, err := stageFor(name, cfg)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	if cfg.rate != 0 {
		stage, err := audfx.ResampleTo(cfg.rate)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return stages, nil
}

func stageFor(name string, cfg *config) (audfx.Stage, error) {
	switch name {
	case "echo":
		return func(b *audio.Buffer) *audio.Buffer {
			return effects.Echo(b, cfg.echoDelay, cfg.echoDecay)
		}, nil
	case "multiecho":
		taps, err := parseTaps(cfg.taps)
		if err != nil {
			return nil, err
		}
		return func(b *audio.Buffer) *audio.Buffer { return effects.MultiEcho(b, taps) }, nil
	case "reverse":
		return effects.Reverse, nil
	case "segments":
		return func(b *audio.Buffer) *audio.Buffer {
			return effects.ReverseSegments(b, cfg.segment)
		}, nil
	case "gate":
		return func(b *audio.Buffer) *audio.Buffer {
			return effects.GateReverse(b, cfg.gateThreshold, cfg.gateLength)
		}, nil
	case "surround":
		pans, err := parseFloats(cfg.pans)
		if err != nil {
			return nil, fmt.Errorf("parsing -pans: %w", err)
		}
		return func(b *audio.Buffer) *audio.Buffer { return effects.PanToSurround(b, pans) }, nil
	case "reverb":
		return func(b *audio.Buffer) *audio.Buffer {
			return effects.RoomReverb(b, cfg.roomSize, cfg.damping)
		}, nil
	case "doppler":
		return func(b *audio.Buffer) *audio.Buffer { return effects.Doppler(b, cfg.velocity) }, nil
	case "karaoke":
		return filters.RemoveVocals, nil
	case "isolate":
		return filters.IsolateVocals, nil
	case "dynkaraoke":
		return func(b *audio.Buffer) *audio.Buffer {
			return filters.RemoveVocalsDynamic(b, cfg.corrThreshold, cfg.corrWindow)
		}, nil
	case "adsr":
		env := filters.Envelope{
			Attack:       cfg.attack,
			Decay:        cfg.decay,
			SustainLevel: cfg.sustain,
			Release:      cfg.release,
		}
		return func(b *audio.Buffer) *audio.Buffer { return filters.ApplyEnvelope(b, env, 0) }, nil
	case "lowpass":
		return func(b *audio.Buffer) *audio.Buffer {
			return filters.LowPass(b, cfg.cutoff, 0, cfg.resonance)
		}, nil
	case "mono":
		return audfx.Mono, nil
	default:
		return nil, fmt.Errorf("unknown effect %q (known: %s)", name, strings.Join(effectNames(), ", "))
	}
}

// parseTaps reads "delay:decay" pairs. An empty string yields nil.
func parseTaps(s string) ([]effects.EchoTap, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var taps []effects.EchoTap
	for pair := range strings.SplitSeq(s, ",") {
		delay, decay, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("tap %q: want delay:decay", pair)
		}

		d, err := strconv.Atoi(delay)
		if err != nil {
			return nil, fmt.Errorf("tap %q: %w", pair, err)
		}
		g, err := strconv.ParseFloat(decay, 64)
		if err != nil {
			return nil, fmt.Errorf("tap %q: %w", pair, err)
		}
		taps = append(taps, effects.EchoTap{Delay: d, Decay: g})
	}
	return taps, nil
}

// parseFloats reads a comma separated list. An empty string yields nil.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []float64
	for field := range strings.SplitSeq(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func printInfo(reg *audio.Registry, inputs []string) error {
	for _, path := range inputs {
		buf, err := decodeFile(reg, path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d ch, %d Hz, %d frames\n", path, buf.Channels, buf.SampleRate, buf.Frames())
	}
	return nil
}

// decodeFile reads path through the decoder registered for its extension.
func decodeFile(reg *audio.Registry, path string) (*audio.Buffer, error) {
	dec, ok := reg.Get(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%s: unsupported format (supported: %s)", path, supported(reg))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

func supported(reg *audio.Registry) string {
	formats := reg.Formats()
	slices.Sort(formats)
	return strings.Join(formats, ", ")
}

func processFiles(ctx context.Context, reg *audio.Registry, cfg *config, inputs []string, stages []audfx.Stage) error {
	data := make([][]byte, len(inputs))
	for i, path := range inputs {
		if _, ok := reg.Get(filepath.Ext(path)); !ok {
			return fmt.Errorf("%s: unsupported format (supported: %s)", path, supported(reg))
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		data[i] = b
	}

	outs, err := audfx.ProcessBatch(ctx, data, cfg.bitDepth, cfg.jobs, stages...)
	if err != nil {
		return err
	}

	for i, out := range outs {
		dest := outputPath(cfg.outDir, inputs[i])
		if err := os.WriteFile(dest, out, 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s (%d bytes)", dest, len(out))
	}
	return nil
}

// outputPath names the result of input as <name>.fx.wav inside dir, or
// beside input when dir is empty.
func outputPath(dir, input string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".fx.wav"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func runSynth(cfg *config, stages []audfx.Stage) error {
	var tone *audio.Buffer
	switch cfg.synth {
	case "sine":
		tone = filters.Sine(cfg.frequency, cfg.duration, cfg.synthRate, cfg.amplitude)
	case "saw", "sawtooth":
		tone = filters.Sawtooth(cfg.frequency, cfg.duration, cfg.synthRate, cfg.amplitude)
	case "square":
		tone = filters.Square(cfg.frequency, cfg.duration, cfg.synthRate, cfg.amplitude, cfg.duty)
	default:
		return fmt.Errorf("unknown waveform %q (want sine, saw or square)", cfg.synth)
	}

	bitDepth := cfg.bitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	out, err := wav.EncodeBytes(audfx.Chain(stages...)(tone), bitDepth)
	if err != nil {
		return err
	}

	dir := cfg.outDir
	if dir == "" {
		dir = "."
	}
	dest := filepath.Join(dir, cfg.synth+".wav")
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s (%d bytes)", dest, len(out))
	return nil
}
