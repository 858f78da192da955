package model

// Choice is one option of a choice list, as defined in the form content.
type Choice struct {
	Label    string
	Sequence int
}

// ChoiceLists maps list name -> option value -> choice metadata.
type ChoiceLists map[string]map[string]Choice

// Question describes one survey item.
// Path is the slash-joined chain of enclosing groups/repeats, it disambiguates
// same-named questions defined in different repeating groups.
type Question struct {
	Type     string
	Name     string
	Label    string
	Path     string
	InRepeat bool
}
