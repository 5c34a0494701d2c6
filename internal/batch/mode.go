package batch

import "fmt"

// UploadMode selects which keys a record is uploaded under.
type UploadMode int

const (
	// ModeReplay uploads each record under every index of the run, keyed
	// with the current iteration's timestamp: count*count attempts per run.
	// Iterations get strictly increasing suffixes, so a run leaves
	// count*count distinct objects. This is the layout existing consumers
	// of the bucket expect.
	ModeReplay UploadMode = iota

	// ModeEach uploads each record once, under its own file name.
	ModeEach
)

// ParseUploadMode parses "replay" or "each". The empty string is replay.
func ParseUploadMode(s string) (UploadMode, error) {
	switch s {
	case "", "replay":
		return ModeReplay, nil
	case "each":
		return ModeEach, nil
	default:
		return 0, fmt.Errorf("unknown upload mode %q (want replay or each)", s)
	}
}

func (m UploadMode) String() string {
	switch m {
	case ModeReplay:
		return "replay"
	case ModeEach:
		return "each"
	default:
		return fmt.Sprintf("UploadMode(%d)", int(m))
	}
}
