package response

// Metadata is the envelope returned alongside every parse result.
// Success is false only when no usable structure could be recovered at
// all, not merely when repairs were needed.
type Metadata struct {
	Success        bool
	Errors         []string
	Warnings       []string
	OriginalLength int
}

func (m *Metadata) fail(msg string) {
	m.Success = false
	m.Errors = append(m.Errors, msg)
}

func (m *Metadata) warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// Combine merges metadata objects: success is the AND of all, errors and
// warnings concatenate in order, lengths sum. Combining nothing yields a
// successful empty envelope.
func Combine(parts ...Metadata) Metadata {
	combined := Metadata{Success: true}
	for _, p := range parts {
		combined.Success = combined.Success && p.Success
		combined.Errors = append(combined.Errors, p.Errors...)
		combined.Warnings = append(combined.Warnings, p.Warnings...)
		combined.OriginalLength += p.OriginalLength
	}
	return combined
}
