package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/midi"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/scale"
	"github.com/jsphweid/scaledex/tone"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	Long:  `Serves the analyzer over HTTP on $PORT (8080 by default).`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type server struct {
	analyzer *scale.Analyzer
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// errorStatus maps analyzer errors to a status code. Anything unknown is a
// registry load failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, scale.ErrShapeNotFound):
		return http.StatusBadRequest
	case errors.Is(err, scale.ErrScaleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseChordBodies(bodies []model.ChordBody) ([]model.InputChord, error) {
	res := make([]model.InputChord, 0, len(bodies))
	for _, b := range bodies {
		root, err := tone.Parse(b.Root)
		if err != nil {
			return nil, err
		}
		res = append(res, model.InputChord{Root: root, Shape: b.Shape})
	}
	return res, nil
}

func toScaleResult(m model.WeightedScaleMatch) model.ScaleResult {
	r := model.ScaleResult{
		Root:      m.Root.String(),
		Scale:     m.Shape.Name,
		Accuracy:  m.Percent(),
		Tones:     make([]string, 0, len(m.Shape.Offsets)),
		Mask:      m.Shape.Offsets,
		Intervals: m.Intervals(),
	}
	for _, t := range m.Tones() {
		r.Tones = append(r.Tones, t.String())
	}
	if r.Mask == nil {
		r.Mask = model.Offsets{}
	}
	return r
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}
	chords, err := parseChordBodies(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	matches, err := s.analyzer.Analyze(chords)
	if err != nil {
		log.Printf("analyze failed: %v", err)
		writeError(w, errorStatus(err), err)
		return
	}

	res := make([]model.ScaleResult, 0, len(matches))
	for _, m := range matches {
		res = append(res, toScaleResult(m))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	var input model.ChordsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}
	root, err := tone.Parse(input.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	chords, err := parseChordBodies(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	match, err := s.analyzer.Scale(root, input.Scale, chords)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	res := make([]model.DegreeResult, 0)
	for _, g := range s.analyzer.SuitableChords(match) {
		d := model.DegreeResult{Degree: g.Degree}
		for _, c := range g.Chords {
			d.Chords = append(d.Chords, model.ChordBody{Root: c.Root.String(), Shape: c.Shape})
		}
		res = append(res, d)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleChordShapes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ShapeResult, 0, s.analyzer.Chords.Len())
	for _, c := range s.analyzer.Chords.All() {
		res = append(res, model.ShapeResult{Name: c.Name, Offsets: c.Offsets})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleScaleShapes(w http.ResponseWriter, r *http.Request) {
	scales, err := s.analyzer.Scales.LoadScales()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	res := make([]model.ShapeResult, 0, len(scales))
	for _, sc := range scales {
		res = append(res, model.ShapeResult{Name: sc.Name, Offsets: sc.Offsets})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleScaleMidi(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := tone.Parse(vars["root"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	match, err := s.analyzer.Scale(root, vars["name"], nil)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", match.Name()+".mid"))
	if err := midi.WriteScale(w, match); err != nil {
		log.Printf("could not write midi for %v: %v", match.Name(), err)
	}
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func NewRouter(analyzer *scale.Analyzer) http.Handler {
	s := &server{analyzer: analyzer}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	router.HandleFunc("/chords", s.handleChords).Methods("POST")
	router.HandleFunc("/shapes/chords", s.handleChordShapes).Methods("GET")
	router.HandleFunc("/shapes/scales", s.handleScaleShapes).Methods("GET")
	router.HandleFunc("/scales/{root}/{name}/midi", s.handleScaleMidi).Methods("GET")
	router.Use(withRequestID)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func serve() {
	analyzer, err := LoadAnalyzer()
	if err != nil {
		log.Fatal(err)
	}

	addr := ":" + constants.GetPort()
	log.Printf("Serving on %v", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter(analyzer)))
}
