package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/scaledex/midi"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

type failingSource struct{}

func (failingSource) LoadScales() ([]model.ScaleShape, error) {
	return nil, io.ErrUnexpectedEOF
}

func testAnalyzer() *scale.Analyzer {
	chords := registry.NewChordShapes(
		model.NewChordShape("dur", 0, 4, 7),
		model.NewChordShape("mi", 0, 3, 7),
		model.NewChordShape("maj", 0, 4, 7, 11),
	)
	scales := registry.StaticScaleSource{
		model.NewScaleShape("major", 0, 2, 4, 5, 7, 9, 11),
		model.NewScaleShape("minor", 0, 2, 3, 5, 7, 8, 10),
	}
	return scale.NewAnalyzer(chords, scales)
}

func do(t *testing.T, h http.Handler, method string, path string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func progressionBody() model.AnalyzeRequestBody {
	return model.AnalyzeRequestBody{Chords: []model.ChordBody{
		{Root: "C", Shape: "dur"},
		{Root: "D", Shape: "mi"},
		{Root: "F", Shape: "maj"},
	}}
}

func TestAnalyzeEndpoint(t *testing.T) {
	resp := do(t, NewRouter(testAnalyzer()), http.MethodPost, "/analyze", progressionBody())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	res := decode[[]model.ScaleResult](t, resp)
	require.NotEmpty(t, res)
	assert.Equal(t, model.ScaleResult{
		Root:      "C",
		Scale:     "major",
		Accuracy:  100,
		Tones:     []string{"C", "D", "E", "F", "G", "A", "B"},
		Mask:      model.Offsets{0, 2, 4, 5, 7, 9, 11},
		Intervals: []int{0, 2, 2, 1, 2, 2, 2},
	}, res[0])
	assert.Equal(t, "F", res[1].Root)
	for _, r := range res {
		assert.Greater(t, r.Accuracy, 70)
	}
}

func TestAnalyzeEndpointEmptyChords(t *testing.T) {
	resp := do(t, NewRouter(testAnalyzer()), http.MethodPost, "/analyze", model.AnalyzeRequestBody{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]model.ScaleResult](t, resp))
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	router := NewRouter(testAnalyzer())

	resp := do(t, router, http.MethodPost, "/analyze", model.AnalyzeRequestBody{Chords: []model.ChordBody{{Root: "C", Shape: "sus4"}}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[model.ErrorResponse](t, resp).Error, "sus4")

	resp = do(t, router, http.MethodPost, "/analyze", model.AnalyzeRequestBody{Chords: []model.ChordBody{{Root: "X", Shape: "dur"}}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	broken := NewRouter(scale.NewAnalyzer(registry.NewChordShapes(), failingSource{}))
	resp = do(t, broken, http.MethodPost, "/analyze", model.AnalyzeRequestBody{})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestChordsEndpoint(t *testing.T) {
	resp := do(t, NewRouter(testAnalyzer()), http.MethodPost, "/chords", model.ChordsRequestBody{Root: "F", Scale: "major"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[[]model.DegreeResult](t, resp)
	require.Len(t, res, 6)
	assert.Equal(t, model.DegreeResult{Degree: 0, Chords: []model.ChordBody{{Root: "F", Shape: "dur"}, {Root: "F", Shape: "maj"}}}, res[0])
	assert.Equal(t, model.DegreeResult{Degree: 5, Chords: []model.ChordBody{{Root: "Bb", Shape: "dur"}, {Root: "Bb", Shape: "maj"}}}, res[3])
}

func TestChordsEndpointUnknownScale(t *testing.T) {
	resp := do(t, NewRouter(testAnalyzer()), http.MethodPost, "/chords", model.ChordsRequestBody{Root: "F", Scale: "dorian"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShapeEndpoints(t *testing.T) {
	router := NewRouter(testAnalyzer())

	chords := decode[[]model.ShapeResult](t, do(t, router, http.MethodGet, "/shapes/chords", nil))
	assert.Equal(t, []model.ShapeResult{
		{Name: "dur", Offsets: model.Offsets{0, 4, 7}},
		{Name: "mi", Offsets: model.Offsets{0, 3, 7}},
		{Name: "maj", Offsets: model.Offsets{0, 4, 7, 11}},
	}, chords)

	scales := decode[[]model.ShapeResult](t, do(t, router, http.MethodGet, "/shapes/scales", nil))
	assert.Len(t, scales, 2)
}

func TestScaleMidiEndpoint(t *testing.T) {
	resp := do(t, NewRouter(testAnalyzer()), http.MethodGet, "/scales/A/minor/midi", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/midi", resp.Header.Get("Content-Type"))

	s, err := smf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []uint8{57, 59, 60, 62, 64, 65, 67, 69}, midi.NoteSequence(s))

	resp = do(t, NewRouter(testAnalyzer()), http.MethodGet, "/scales/A/dorian/midi", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
