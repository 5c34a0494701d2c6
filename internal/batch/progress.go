package batch

// Kind identifies a progress notification.
type Kind int

const (
	KindGenerated Kind = iota
	KindWritten
	KindUploaded
	KindUploadFailed
)

// Progress is sent to Runner.OnProgress as the run advances.
// Index and Total are set for generation and write notifications; Key for
// upload notifications.
type Progress struct {
	Kind  Kind
	Index int
	Total int
	Name  string
	Key   string
	Err   error
}
