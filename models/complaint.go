package models

// ComplaintType enumerates the reasons the API accepts when reporting
// a post. The numeric values are part of the wire protocol.
type ComplaintType int

const (
	// ComplaintUnacceptable reports unacceptable materials.
	ComplaintUnacceptable ComplaintType = 1

	// ComplaintInsult reports a post that insults the reporter.
	ComplaintInsult ComplaintType = 2

	// ComplaintInsultsRussia reports a post that insults Russia.
	ComplaintInsultsRussia ComplaintType = 3
)

// Valid reports whether t is one of the documented complaint reasons.
// The client does not reject other values; the server decides.
func (t ComplaintType) Valid() bool {
	return t >= ComplaintUnacceptable && t <= ComplaintInsultsRussia
}

// String returns a human-readable label for the complaint reason.
func (t ComplaintType) String() string {
	switch t {
	case ComplaintUnacceptable:
		return "unacceptable materials"
	case ComplaintInsult:
		return "insults me"
	case ComplaintInsultsRussia:
		return "insults Russia"
	default:
		return "unknown"
	}
}
