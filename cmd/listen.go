package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/scale"
	"github.com/jsphweid/scaledex/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [port]",
	Short: "Analyzes chords played on a MIDI input",
	Long: `Listens on a MIDI input port (0 by default). Every recognized chord is
added to the progression and the progression is analyzed again.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port := 0
		if len(args) == 1 {
			p, err := strconv.Atoi(args[0])
			cobra.CheckErr(err)
			port = p
		}
		analyzer, err := LoadAnalyzer()
		cobra.CheckErr(err)
		cobra.CheckErr(listen(analyzer, port))
	},
}

// progression collects chords from held notes. It is fed from the MIDI
// callback and read from the debounced analysis, so it is locked.
type progression struct {
	mu       sync.Mutex
	analyzer *scale.Analyzer
	onNotes  chord.OnNotes
	chords   []model.InputChord
}

func newProgression(analyzer *scale.Analyzer) *progression {
	return &progression{analyzer: analyzer, onNotes: make(chord.OnNotes)}
}

func (p *progression) noteOn(key uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onNotes[key] = true
}

func (p *progression) noteOff(key uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.onNotes, key)
}

// settle identifies the held notes and, if they form a new chord, adds it.
// It reports whether the progression changed.
func (p *progression) settle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := chord.Identify(util.GetKeys(p.onNotes), p.analyzer.Chords)
	if !ok {
		return false
	}
	if n := len(p.chords); n > 0 && p.chords[n-1] == c {
		return false
	}
	p.chords = append(p.chords, c)
	return true
}

func (p *progression) snapshot() []model.InputChord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.InputChord(nil), p.chords...)
}

func (p *progression) report() {
	if !p.settle() {
		return
	}
	chords := p.snapshot()
	fmt.Printf("\nProgression: %v\n", chords)
	matches, err := p.analyzer.Analyze(chords)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	printMatches(matches, 5)
}

func listen(analyzer *scale.Analyzer, port int) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return fmt.Errorf("can't find MIDI input %d: %w", port, err)
	}

	prog := newProgression(analyzer)
	debounced := debounce.New(constants.ListenDebounce * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			prog.noteOn(key)
			debounced(prog.report)
		case msg.GetNoteEnd(&ch, &key):
			prog.noteOff(key)
		default:
			// ignore
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("Listening on %v, ctrl-c to stop\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
