package forms

// Field tracks a single input's value and validation state. A field starts
// pristine; setting or touching it moves it to touched, which is what lets
// the UI decide when to surface errors.
type Field struct {
	value   string
	errors  []string
	touched bool
}

// Set stores the value and marks the field touched.
func (f *Field) Set(value string) {
	f.value = value
	f.touched = true
}

func (f *Field) Value() string {
	return f.value
}

// Touch marks the field touched without changing the value. Submission
// touches every field so errors on untouched fields become visible.
func (f *Field) Touch() {
	f.touched = true
}

func (f *Field) Pristine() bool {
	return !f.touched
}

func (f *Field) Touched() bool {
	return f.touched
}

// Valid reports the outcome of the last validation pass.
func (f *Field) Valid() bool {
	return len(f.errors) == 0
}

func (f *Field) Errors() []string {
	return f.errors
}

func (f *Field) setErrors(errs []string) {
	f.errors = errs
}

// collectField records the errors of a touched invalid field under its
// display name. Pristine fields stay silent even when invalid.
func collectField(out map[string][]string, name string, f *Field) {
	if f.Touched() && !f.Valid() {
		out[name] = f.Errors()
	}
}
