package stats

// PhoneMetrics are only computed when a phone separator is defined.
type PhoneMetrics struct {
	// AWL is the average word length in phones.
	AWL float64 `json:"awl"`
}

// Description is the basic description of a corpus.
type Description struct {
	NUtterances           int           `json:"nutterances"`
	NUtterancesSingleWord int           `json:"nutterances_single_word"`
	NWordTokens           int           `json:"nword_tokens"`
	NWordTypes            int           `json:"nword_types"`
	NWordHapax            int           `json:"nword_hapax"`
	MATTR                 *float64      `json:"mattr,omitempty"`
	Phone                 *PhoneMetrics `json:"phone,omitempty"`
}

// Field is a named statistic.
type Field struct {
	Name    string
	Value   float64
	Integer bool
}

// Fields returns the statistics in report order, absent ones skipped.
func (d Description) Fields() []Field {
	fields := []Field{
		{Name: "nutterances", Value: float64(d.NUtterances), Integer: true},
		{Name: "nutterances_single_word", Value: float64(d.NUtterancesSingleWord), Integer: true},
		{Name: "nword_tokens", Value: float64(d.NWordTokens), Integer: true},
		{Name: "nword_types", Value: float64(d.NWordTypes), Integer: true},
		{Name: "nword_hapax", Value: float64(d.NWordHapax), Integer: true},
	}

	if d.MATTR != nil {
		fields = append(fields, Field{Name: "mattr", Value: *d.MATTR})
	}
	if d.Phone != nil {
		fields = append(fields, Field{Name: "awl", Value: d.Phone.AWL})
	}

	return fields
}
