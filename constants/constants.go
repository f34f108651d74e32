package constants

import "os"

func getenv(key string, fallback string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return fallback
}

func GetChordsPath() string {
	return getenv("CHORDS_PATH", "./chords")
}

func GetScalesPath() string {
	return getenv("SCALES_PATH", "./scales")
}

// GetScalesTable names the DynamoDB table scales are loaded from.
// Empty means scales come from GetScalesPath.
func GetScalesTable() string {
	return os.Getenv("SCALES_TABLE")
}

func GetDynamoEndpoint() string {
	return getenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetAWSRegion() string {
	return getenv("AWS_REGION", "localhost")
}

func GetPort() string {
	return getenv("PORT", "8080")
}

// A scale is accepted only when it covers strictly more than this share
// of the input weight.
const RequiredAccuracy = 0.7

const RootWeight = 3

// MIDI scale playback
const (
	MiddleC        = 48
	NoteVelocity   = 75
	NoteChannel    = 4
	NoteLengthMs   = 300
	TicksPerBeat   = 960
	PlaybackTempo  = 120.0
	ListenDebounce = 250 // ms
)
