package referral

// Course is one of the programs a friend can be referred to.
type Course string

const (
	WebDevelopment    Course = "Web Development"
	MobileDevelopment Course = "Mobile Development"
	DataScience       Course = "Data Science"
	UIUXDesign        Course = "UI/UX Design"
	MachineLearning   Course = "Machine Learning"
	CloudComputing    Course = "Cloud Computing"
)

// DefaultCourse is preselected in a new form.
const DefaultCourse = WebDevelopment

// Courses lists every course in the order the select shows them.
var Courses = []Course{
	WebDevelopment,
	MobileDevelopment,
	DataScience,
	UIUXDesign,
	MachineLearning,
	CloudComputing,
}

// ParseCourse reports whether s names a known course.
func ParseCourse(s string) (Course, bool) {
	for _, c := range Courses {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Form is the body sent to the referrals backend.
// Refree* is the person filling the form, Refered* the friend being invited.
type Form struct {
	ReferedName  string `json:"referedName"`
	ReferedEmail string `json:"referedEmail"`
	RefreeName   string `json:"refreeName"`
	RefreeEmail  string `json:"refreeEmail"`
	Course       Course `json:"course"`
}

func NewForm() Form {
	return Form{Course: DefaultCourse}
}

// Field names a form input. The values double as HTML input names.
type Field string

const (
	FieldRefreeName   Field = "refreeName"
	FieldRefreeEmail  Field = "refreeEmail"
	FieldReferedName  Field = "referedName"
	FieldReferedEmail Field = "referedEmail"
	FieldCourse       Field = "course"
)

// Fields is the order the inputs are shown and advanced through.
var Fields = []Field{
	FieldRefreeName,
	FieldRefreeEmail,
	FieldReferedName,
	FieldReferedEmail,
	FieldCourse,
}

// Next returns the field that follows f. The course select is last.
func Next(f Field) (Field, bool) {
	for i, field := range Fields {
		if field == f && i+1 < len(Fields) {
			return Fields[i+1], true
		}
	}
	return "", false
}

// Value returns the current value of f.
func (f Form) Value(field Field) string {
	switch field {
	case FieldRefreeName:
		return f.RefreeName
	case FieldRefreeEmail:
		return f.RefreeEmail
	case FieldReferedName:
		return f.ReferedName
	case FieldReferedEmail:
		return f.ReferedEmail
	case FieldCourse:
		return string(f.Course)
	}
	return ""
}

// With returns a copy of f with field replaced by value.
// An unknown course leaves the current selection in place.
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldRefreeName:
		f.RefreeName = value
	case FieldRefreeEmail:
		f.RefreeEmail = value
	case FieldReferedName:
		f.ReferedName = value
	case FieldReferedEmail:
		f.ReferedEmail = value
	case FieldCourse:
		if c, ok := ParseCourse(value); ok {
			f.Course = c
		}
	}
	return f
}
