package model

// Product represents an alloy product line in the catalogue.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
	Alloys         []string `json:"alloys"`
}

// Clone returns a deep copy so callers cannot mutate shared slices.
// Empty lists stay empty rather than nil so they encode as [].
func (p Product) Clone() Product {
	out := p
	out.Specifications = cloneStrings(p.Specifications)
	out.Alloys = cloneStrings(p.Alloys)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
