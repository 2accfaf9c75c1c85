package model

import "encoding/json"

// AnswerValue is a string or a list of strings on the wire. The list form is
// used exactly for checkbox questions; every other type answers with a single
// string (ratings as a decimal integer "1".."5").
type AnswerValue struct {
	text   string
	list   []string
	isList bool
}

func StringValue(s string) AnswerValue {
	return AnswerValue{text: s}
}

func ListValue(items []string) AnswerValue {
	return AnswerValue{list: items, isList: true}
}

func (v AnswerValue) IsList() bool {
	return v.isList
}

func (v AnswerValue) Text() string {
	return v.text
}

func (v AnswerValue) List() []string {
	return v.list
}

// Empty reports whether the value counts as "unanswered": a blank string, or
// a checkbox selection with nothing checked.
func (v AnswerValue) Empty() bool {
	if v.isList {
		return len(v.list) == 0
	}
	return v.text == ""
}

func (v AnswerValue) Contains(option string) bool {
	for _, item := range v.list {
		if item == option {
			return true
		}
	}
	return false
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AnswerValue{text: s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*v = AnswerValue{list: items, isList: true}
	return nil
}
