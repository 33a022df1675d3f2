package driver

// Stage is the step a file is in.
type Stage string

const (
	StageRead   Stage = "read"
	StageFormat Stage = "format"
	StageWrite  Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	// StatusCached marks a file skipped by the cache.
	StatusCached  Status = "cached"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Changed bool
}

// ProgressSink receives events from worker goroutines; implementations must
// be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

func emitResult(sink ProgressSink, res FormatResult) {
	evt := Event{File: res.Path, Stage: StageFormat, Status: StatusDone, Changed: res.Changed}
	switch {
	case res.Err != nil:
		evt.Status = StatusError
	case res.Cached:
		evt.Status = StatusCached
	}
	emit(sink, evt)
}
