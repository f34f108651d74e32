package model

type ChordBody struct {
	Root  string `json:"root"`
	Shape string `json:"shape"`
}

type AnalyzeRequestBody struct {
	Chords []ChordBody `json:"chords"`
}

type ScaleResult struct {
	Root      string   `json:"root"`
	Scale     string   `json:"scale"`
	Accuracy  int      `json:"accuracy"`
	Tones     []string `json:"tones"`
	Mask      Offsets  `json:"mask"`
	Intervals []int    `json:"intervals"`
}

type ChordsRequestBody struct {
	Root   string      `json:"root"`
	Scale  string      `json:"scale"`
	Chords []ChordBody `json:"chords,omitempty"`
}

type DegreeResult struct {
	Degree int         `json:"degree"`
	Chords []ChordBody `json:"chords"`
}

type ShapeResult struct {
	Name    string  `json:"name"`
	Offsets Offsets `json:"offsets"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
