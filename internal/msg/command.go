// internal/msg/command.go
package msg

// Command is an instruction from input handling to the network worker.
// No payload beyond the tag: commands are idempotent or re-derivable
// from later ticks, so dropping one on a full queue is acceptable.
type Command int

const (
	Poll Command = iota
	Next
	Previous
	JumpHome
	NetworkNudge
)

func (c Command) String() string {
	switch c {
	case Poll:
		return "poll"
	case Next:
		return "next"
	case Previous:
		return "previous"
	case JumpHome:
		return "jump-home"
	case NetworkNudge:
		return "network-nudge"
	default:
		return "unknown"
	}
}
