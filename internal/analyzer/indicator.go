package analyzer

// IndicatorKind tags a structural or technology finding recorded during the walk.
type IndicatorKind int

const (
	IndicatorMicroservice IndicatorKind = iota
	IndicatorApplication
	IndicatorTechnology
)

func (k IndicatorKind) String() string {
	switch k {
	case IndicatorMicroservice:
		return "Microservice"
	case IndicatorApplication:
		return "Application"
	case IndicatorTechnology:
		return "Technology"
	default:
		return "Unknown"
	}
}

// Indicator is one notable finding. Duplicates are allowed and order is
// discovery order.
type Indicator struct {
	Kind IndicatorKind
	Name string
}

// String renders the display form, e.g. "Microservice: auth-service".
func (i Indicator) String() string {
	return i.Kind.String() + ": " + i.Name
}
