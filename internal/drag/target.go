package drag

// TargetKind names the type of drop zone
type TargetKind string

const (
	TargetPriority TargetKind = "priority"
	TargetStatus   TargetKind = "status"
	TargetPerson   TargetKind = "person"
	TargetProject  TargetKind = "project"
	TargetTask     TargetKind = "task"
)

// Unassigned is the person bucket value meaning "no owner"
const Unassigned = "unassigned"

// Target is a drop zone: a priority lane, a status column, a person bucket
// or an entity card.
type Target struct {
	Kind  TargetKind
	Value string
}

func (t Target) String() string {
	return string(t.Kind) + ":" + t.Value
}

// Drop is what a completed drag hands to the resolver
type Drop struct {
	Payload Payload
	Target  Target
}
